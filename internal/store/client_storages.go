package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/crypto"
	"github.com/MKhiriev/riegum-client/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed to the session client and the service layer.
type ClientStorages struct {
	// SessionState keeps the display name of the logged-in user.
	SessionState SessionStateRepository

	// Cookies keeps the sealed credential cookie jar.
	Cookies CookieRepository

	// Preferences keeps per-user client settings.
	Preferences PreferenceRepository

	db *DB
}

// NewClientStorages opens the sqlite database at cfg.DB.DSN, creating the
// file if needed, applies pending migrations and wires the repositories.
// Cookies are sealed with sealer before they are written.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.CookieSealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionState: NewSessionStateRepository(db, logger),
		Cookies:      NewCookieRepository(db, sealer, logger),
		Preferences:  NewPreferenceRepository(db, logger),
		db:           db,
	}, nil
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
