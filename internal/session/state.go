package session

import "time"

// State is the authentication state of a Client.
type State int32

const (
	// Anonymous is the initial state and the state after logout or an
	// unrecoverable refresh failure.
	Anonymous State = iota
	// Authenticated means the client holds credentials it believes valid.
	Authenticated
	// Refreshing means a 401 was received and a refresh is in flight.
	Refreshing
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Refreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Session is the non-sensitive description of a logged-in session.
type Session struct {
	DisplayName     string
	AuthenticatedAt time.Time
	// ExpiresAt is the access credential expiry when it can be read, zero
	// otherwise.
	ExpiresAt time.Time
}
