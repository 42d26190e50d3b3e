package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request identifier to the server.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient returns an HTTPClient preconfigured for a JSON API rooted at
// baseURL.
//
// The client:
//   - resolves relative request URLs against baseURL;
//   - applies timeout to every request (zero keeps the transport default);
//   - stores and replays cookies through jar; a nil jar turns off resty's
//     default jar, so the caller manages cookies per request;
//   - never follows redirects, so a 3xx reaches the caller untouched;
//   - stamps each request with an X-Request-ID header, reusing the
//     identifier stored in the request context when there is one.
func NewAPIClient(baseURL string, timeout time.Duration, jar http.CookieJar) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.SetCookieJar(jar)

	ids := NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(r.Context())
		if !ok {
			id = ids.Generate()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client}
}
