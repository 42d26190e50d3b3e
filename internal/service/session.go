package service

import (
	"context"

	"github.com/MKhiriev/riegum-client/internal/session"
)

//go:generate mockgen -source=session.go -destination=../mock/session_manager_mock.go -package=mock

// SessionManager is the part of the session client the services drive
// directly. Every other request goes through the adapter.
type SessionManager interface {
	Login(ctx context.Context, identifier, secret string) (session.Session, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (session.Session, error)
	Session() session.Session
	State() session.State
}
