package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/migrations"
)

// sqlBuilder builds sqlite statements with ? placeholders.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("applied migrations")
	}
	return nil
}
