package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/riegum-client/internal/logger"
)

const preferencesTable = "preferences"

type preferenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *preferenceRepository) GetPreference(ctx context.Context, owner, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"owner": owner, "name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPreferenceNotFound
	case err != nil:
		log.Err(err).
			Str("func", "preferenceRepository.GetPreference").
			Str("name", name).
			Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *preferenceRepository) SetPreference(ctx context.Context, owner, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Insert(preferencesTable).
		Columns("owner", "name", "value", "updated_at").
		Values(owner, name, value, r.now().UTC()).
		Suffix("ON CONFLICT(owner, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SetPreference").
			Str("name", name).
			Msg("failed to save preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *preferenceRepository) DeletePreference(ctx context.Context, owner string, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Delete(preferencesTable).
		Where(sq.Eq{"owner": owner, "name": names}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.DeletePreference").
			Strs("names", names).
			Msg("failed to delete preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
