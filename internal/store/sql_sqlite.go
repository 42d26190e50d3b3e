package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/logger"
)

// sqliteParams are appended to plain file paths. A DSN that already has a
// query string is used as given.
const sqliteParams = "_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL"

// NewConnectSQLite opens the local database file, creating it (and its
// directory) with owner-only permissions when missing.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	log = log.Component("sqlite")

	path, dsn := sqliteDSN(cfg.DSN)
	if path != "" {
		if err := prepareDBFile(path); err != nil {
			log.Err(err).Str("path", path).Msg("database file is not usable")
			return nil, fmt.Errorf("prepare database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Msg("open database")
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("ping database")
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Debug().Str("path", path).Msg("local database ready")

	return &DB{DB: conn, logger: log}, nil
}

// sqliteDSN returns the file path to prepare (empty for URIs the driver
// owns) and the DSN handed to the driver.
func sqliteDSN(raw string) (path, dsn string) {
	if strings.HasPrefix(raw, "file:") || strings.Contains(raw, "?") {
		return "", raw
	}
	return raw, raw + "?" + sqliteParams
}

func prepareDBFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
