package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/riegum-client/internal/logger"
)

const (
	sessionStateTable = "session_state"
	singletonRowID    = 1
)

type sessionStateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionStateRepository(db *DB, logger *logger.Logger) SessionStateRepository {
	return &sessionStateRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionStateRepository) DisplayName(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Select("display_name").
		From(sessionStateTable).
		Where("id = ?", singletonRowID).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var name string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		log.Err(err).Str("func", "sessionStateRepository.DisplayName").Msg("failed to read display name")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return name, nil
}

func (r *sessionStateRepository) SetDisplayName(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Insert(sessionStateTable).
		Columns("id", "display_name", "updated_at").
		Values(singletonRowID, name, r.now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionStateRepository.SetDisplayName").Msg("failed to save display name")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionStateRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Delete(sessionStateTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionStateRepository.Clear").Msg("failed to clear display name")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
