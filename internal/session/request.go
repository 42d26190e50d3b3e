package session

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Request describes a call to dispatch through the Client.
type Request struct {
	Method string
	// Path is relative to the API base URL, or an absolute URL.
	Path   string
	Query  url.Values
	Header http.Header
	// Body is sent verbatim when it is a []byte, string or io.Reader and
	// encoded as JSON otherwise. It is buffered once so that a retry sends
	// the same bytes.
	Body any
	// Public requests are dispatched exactly once: a 401 is returned to the
	// caller without a refresh attempt.
	Public bool
}

// Response is the result of a dispatched Request. Set-Cookie headers are
// removed before it is returned.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	cookies []*http.Cookie
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

type encodedBody struct {
	data        []byte
	contentType string
}

func encodeBody(body any) (*encodedBody, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return &encodedBody{data: b}, nil
	case string:
		return &encodedBody{data: []byte(b)}, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return &encodedBody{data: data}, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return &encodedBody{data: data, contentType: "application/json"}, nil
	}
}
