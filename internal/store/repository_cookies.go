package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/riegum-client/internal/crypto"
	"github.com/MKhiriev/riegum-client/internal/logger"
)

const cookiesTable = "cookies"

// cookieRepository stores the credential jar sealed with the storage key, so
// a copied database file does not leak a usable session.
type cookieRepository struct {
	*DB
	sealer crypto.CookieSealer
	logger *logger.Logger
	now    func() time.Time
}

func NewCookieRepository(db *DB, sealer crypto.CookieSealer, logger *logger.Logger) CookieRepository {
	return &cookieRepository{
		DB:     db,
		sealer: sealer,
		logger: logger,
		now:    time.Now,
	}
}

func (r *cookieRepository) Load(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Select("sealed").
		From(cookiesTable).
		Where("id = ?", singletonRowID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&sealed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "cookieRepository.Load").Msg("failed to read cookies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	blob, err := r.sealer.Open(sealed)
	if err != nil {
		log.Warn().Err(err).Str("func", "cookieRepository.Load").Msg("failed to unseal cookies")
		return nil, fmt.Errorf("%w: %w", ErrCookiesUnreadable, err)
	}

	return blob, nil
}

func (r *cookieRepository) Save(ctx context.Context, blob []byte) error {
	log := logger.FromContext(ctx)

	sealed, err := r.sealer.Seal(blob)
	if err != nil {
		log.Err(err).Str("func", "cookieRepository.Save").Msg("failed to seal cookies")
		return fmt.Errorf("seal cookies: %w", err)
	}

	query, args, err := sqlBuilder.Insert(cookiesTable).
		Columns("id", "sealed", "updated_at").
		Values(singletonRowID, sealed, r.now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET sealed = excluded.sealed, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "cookieRepository.Save").Msg("failed to save cookies")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *cookieRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlBuilder.Delete(cookiesTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "cookieRepository.Clear").Msg("failed to clear cookies")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
