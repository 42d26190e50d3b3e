package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrSessionExpired is returned when a 401 could not be recovered by a
	// refresh. Session state has already been cleared when it is returned
	// from Do.
	ErrSessionExpired = errors.New("session expired")
	// ErrNetworkFailure wraps transport-level failures. Session state is
	// never modified when it is returned.
	ErrNetworkFailure = errors.New("network failure")
	// ErrInvalidCredentials is matched by every *InvalidCredentialsError.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession is returned by Restore when nothing was persisted.
	ErrNoSession = errors.New("no stored session")
)

// errSessionCleared is returned to requests whose refresh was overtaken by a
// logout. Nothing is cleared or redirected a second time.
var errSessionCleared = fmt.Errorf("%w: session cleared during refresh", ErrSessionExpired)

const defaultInvalidCredentialsMessage = "invalid credentials"

// InvalidCredentialsError is returned by Login when the server rejects the
// identifier or secret. Message is the server's text, suitable for display.
type InvalidCredentialsError struct {
	Message string
}

func (e *InvalidCredentialsError) Error() string {
	return e.Message
}

func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// ServerError describes a response with a non-2xx status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// CheckStatus returns nil for a 2xx response and a *ServerError carrying the
// server message otherwise.
func CheckStatus(resp *Response) error {
	if resp.OK() {
		return nil
	}

	return &ServerError{
		StatusCode: resp.StatusCode,
		Message:    ServerMessage(resp.StatusCode, resp.Body),
	}
}

// ServerMessage extracts a human readable message from an error body.
//
// The Riegum API answers with {"detail": ...}, {"error": ...} or
// {"mensaje": ...}; validation failures come back as a field to messages
// map. Anything else falls back to the trimmed body, then to the status
// text.
func ServerMessage(status int, body []byte) string {
	if msg := messageFromJSON(body); msg != "" {
		return msg
	}

	text := strings.TrimSpace(string(body))
	if text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}

	return http.StatusText(status)
}

func messageFromJSON(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "error", "mensaje", "message"} {
		if raw, ok := fields[key]; ok {
			if msg := flatten(raw); msg != "" {
				return msg
			}
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if msg := flatten(fields[k]); msg != "" {
			parts = append(parts, k+": "+msg)
		}
	}

	return strings.Join(parts, "; ")
}

func flatten(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " ")
	}

	return ""
}
