package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/riegum-client/internal/crypto"
	"github.com/MKhiriev/riegum-client/internal/logger"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func q(s string) string { return regexp.QuoteMeta(s) }

// ── session state ────────────────────────────────────────────────────────────

func newTestSessionStateRepo(t *testing.T) (*sessionStateRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewSessionStateRepository(db, logger.Nop()).(*sessionStateRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func TestSessionState_DisplayName(t *testing.T) {
	repo, mock := newTestSessionStateRepo(t)

	mock.ExpectQuery(q("SELECT display_name FROM session_state WHERE id = ?")).
		WithArgs(singletonRowID).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow("alice"))

	name, err := repo.DisplayName(testContext())
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionState_DisplayName_Empty(t *testing.T) {
	repo, mock := newTestSessionStateRepo(t)

	mock.ExpectQuery(q("SELECT display_name FROM session_state")).WillReturnError(sql.ErrNoRows)

	name, err := repo.DisplayName(testContext())
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestSessionState_DisplayName_QueryError(t *testing.T) {
	repo, mock := newTestSessionStateRepo(t)

	mock.ExpectQuery(q("SELECT display_name FROM session_state")).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.DisplayName(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSessionState_SetDisplayName_Upserts(t *testing.T) {
	repo, mock := newTestSessionStateRepo(t)

	mock.ExpectExec(q("INSERT INTO session_state (id,display_name,updated_at) VALUES (?,?,?) ON CONFLICT(id) DO UPDATE")).
		WithArgs(singletonRowID, "alice", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetDisplayName(testContext(), "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionState_Clear(t *testing.T) {
	repo, mock := newTestSessionStateRepo(t)

	mock.ExpectExec(q("DELETE FROM session_state")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.Clear(testContext()))

	mock.ExpectExec(q("DELETE FROM session_state")).WillReturnError(errors.New("database is locked"))
	assert.ErrorIs(t, repo.Clear(testContext()), ErrExecutingStatement)
}

// ── cookies ──────────────────────────────────────────────────────────────────

// stubSealer records what it was given and answers with canned results.
type stubSealer struct {
	sealed, opened   []byte
	sealErr, openErr error
	gotSeal, gotOpen []byte
}

func (s *stubSealer) Seal(plain []byte) ([]byte, error) {
	s.gotSeal = plain
	return s.sealed, s.sealErr
}

func (s *stubSealer) Open(sealed []byte) ([]byte, error) {
	s.gotOpen = sealed
	return s.opened, s.openErr
}

func newTestCookieRepo(t *testing.T) (*cookieRepository, sqlmock.Sqlmock, *stubSealer) {
	t.Helper()
	sealer := &stubSealer{}

	db, sqlMock := newTestDB(t)
	repo := NewCookieRepository(db, sealer, logger.Nop()).(*cookieRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, sqlMock, sealer
}

func TestCookies_SaveSealsBeforeWriting(t *testing.T) {
	repo, sqlMock, sealer := newTestCookieRepo(t)

	sealer.sealed = []byte("sealed-blob")
	sqlMock.ExpectExec(q("INSERT INTO cookies (id,sealed,updated_at) VALUES (?,?,?) ON CONFLICT(id) DO UPDATE")).
		WithArgs(singletonRowID, []byte("sealed-blob"), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(testContext(), []byte(`[{"Name":"access_token"}]`)))
	assert.Equal(t, []byte(`[{"Name":"access_token"}]`), sealer.gotSeal)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCookies_SaveSealFailure(t *testing.T) {
	repo, sqlMock, sealer := newTestCookieRepo(t)
	sealer.sealErr = assert.AnError

	err := repo.Save(testContext(), []byte("x"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCookies_LoadOpensBlob(t *testing.T) {
	repo, sqlMock, sealer := newTestCookieRepo(t)

	sqlMock.ExpectQuery(q("SELECT sealed FROM cookies WHERE id = ?")).
		WithArgs(singletonRowID).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow([]byte("sealed-blob")))
	sealer.opened = []byte("jar")

	blob, err := repo.Load(testContext())
	require.NoError(t, err)
	assert.Equal(t, []byte("jar"), blob)
	assert.Equal(t, []byte("sealed-blob"), sealer.gotOpen)
}

func TestCookies_LoadNothingSaved(t *testing.T) {
	repo, sqlMock, _ := newTestCookieRepo(t)

	sqlMock.ExpectQuery(q("SELECT sealed FROM cookies")).WillReturnError(sql.ErrNoRows)

	blob, err := repo.Load(testContext())
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestCookies_LoadWithAnotherKey(t *testing.T) {
	repo, sqlMock, sealer := newTestCookieRepo(t)

	sqlMock.ExpectQuery(q("SELECT sealed FROM cookies")).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow([]byte("sealed-blob")))
	sealer.openErr = crypto.ErrUnsealFailed

	_, err := repo.Load(testContext())
	assert.ErrorIs(t, err, ErrCookiesUnreadable)
	assert.ErrorIs(t, err, crypto.ErrUnsealFailed)
}

func TestCookies_Clear(t *testing.T) {
	repo, sqlMock, _ := newTestCookieRepo(t)

	sqlMock.ExpectExec(q("DELETE FROM cookies")).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Clear(testContext()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

// ── preferences ──────────────────────────────────────────────────────────────

func newTestPreferenceRepo(t *testing.T) (*preferenceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewPreferenceRepository(db, logger.Nop()).(*preferenceRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func TestPreferences_Get(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery(q("SELECT value FROM preferences WHERE name = ? AND owner = ?")).
		WithArgs("temperaturaManual", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("24.5"))

	v, err := repo.GetPreference(testContext(), "alice", "temperaturaManual")
	require.NoError(t, err)
	assert.Equal(t, "24.5", v)
}

func TestPreferences_GetMissing(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery(q("SELECT value FROM preferences")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPreference(testContext(), "alice", "climaGuardado")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferences_Set(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(q("INSERT INTO preferences (owner,name,value,updated_at) VALUES (?,?,?,?) ON CONFLICT(owner, name) DO UPDATE")).
		WithArgs("alice", "temperaturaManual", "24.5", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetPreference(testContext(), "alice", "temperaturaManual", "24.5"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferences_DeleteSeveral(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(q("DELETE FROM preferences WHERE name IN (?,?) AND owner = ?")).
		WithArgs("temperaturaManual", "climaGuardado", "alice").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeletePreference(testContext(), "alice", "temperaturaManual", "climaGuardado"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferences_DeleteNothing(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	require.NoError(t, repo.DeletePreference(testContext(), "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferences_DeleteFails(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(q("DELETE FROM preferences")).WillReturnError(errors.New("readonly database"))

	err := repo.DeletePreference(testContext(), "alice", "climaGuardado")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
