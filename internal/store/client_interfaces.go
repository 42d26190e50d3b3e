package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStateRepository keeps the display name of the logged-in user. It
// satisfies session.SessionStore.
type SessionStateRepository interface {
	DisplayName(ctx context.Context) (string, error)
	SetDisplayName(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}

// CookieRepository keeps the sealed credential cookie jar. It satisfies
// session.CookieStore.
type CookieRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
	Clear(ctx context.Context) error
}

// PreferenceRepository keeps small per-user settings such as the manual
// temperature or the last fetched climate.
type PreferenceRepository interface {
	// GetPreference returns ErrPreferenceNotFound when nothing is stored.
	GetPreference(ctx context.Context, owner, name string) (string, error)
	SetPreference(ctx context.Context, owner, name, value string) error
	DeletePreference(ctx context.Context, owner string, names ...string) error
}
