// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, request identifiers,
// HTTP response writing, HTTP client initialization, and JWT token
// generation and inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier in the
// context. A request and its retry share one identifier so that both show up
// under the same X-Request-ID in server logs.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found, is a string, and is not empty
//   - ok == false: value is missing, empty, or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
