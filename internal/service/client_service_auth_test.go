package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/mock"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

// newTestAuthSvc: хелпер для создания clientAuthService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockSessionManager, *mock.MockRiegumAPI) {
	t.Helper()
	mockSession := mock.NewMockSessionManager(ctrl)
	mockAPI := mock.NewMockRiegumAPI(ctrl)

	svc := NewClientAuthService(mockSession, mockAPI, validators.NewRiegumValidator(), logger.Nop()).(*clientAuthService)
	return svc, mockSession, mockAPI
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAPI := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	reg := models.Registration{Username: "alice", Email: "alice@example.com", Password: "s3cret"}
	mockAPI.EXPECT().Register(ctx, reg).Return(models.RegisteredUser{ID: 7, Username: "alice"}, nil)

	user, err := svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestClientAuthService_Register_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	// адаптер не должен вызываться
	_, err := svc.Register(context.Background(), models.Registration{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestClientAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAPI := newTestAuthSvc(t, ctrl)

	serverErr := fmt.Errorf("register request: %w", fmt.Errorf("%w: username: Ya existe un usuario con este nombre.", adapter.ErrBadRequest))
	mockAPI.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.RegisteredUser{}, serverErr)

	_, err := svc.Register(context.Background(), models.Registration{Username: "alice", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestClientAuthService_Register_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAPI := newTestAuthSvc(t, ctrl)

	mockAPI.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegisteredUser{}, fmt.Errorf("register request: %w", session.ErrNetworkFailure))

	_, err := svc.Register(context.Background(), models.Registration{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, session.ErrNetworkFailure)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	want := session.Session{DisplayName: "alice", AuthenticatedAt: time.Now()}
	mockSession.EXPECT().Login(ctx, "alice", "s3cret").Return(want, nil)

	got, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "", "s3cret")
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)

	rejected := &session.InvalidCredentialsError{Message: "No active account found with the given credentials"}
	mockSession.EXPECT().Login(gomock.Any(), "alice", "nope").Return(session.Session{}, rejected)

	_, err := svc.Login(context.Background(), "alice", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "No active account found")
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(session.Session{}, &session.ServerError{StatusCode: 503, Message: "mantenimiento"})

	_, err := svc.Login(context.Background(), "alice", "s3cret")
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ── Logout / Restore / CurrentUser ───────────────────────────────────────────

func TestClientAuthService_Logout_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Logout(ctx).Times(1)
	svc.Logout(ctx)
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().Restore(gomock.Any()).Return(session.Session{DisplayName: "alice"}, nil)

	sess, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.DisplayName)
}

func TestClientAuthService_RestoreSession_Nothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().Restore(gomock.Any()).Return(session.Session{}, session.ErrNoSession)

	_, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestClientAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSession, _ := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockSession.EXPECT().State().Return(session.Anonymous),
		mockSession.EXPECT().State().Return(session.Refreshing),
		mockSession.EXPECT().Session().Return(session.Session{DisplayName: "alice"}),
	)

	assert.Empty(t, svc.CurrentUser())
	assert.Equal(t, "alice", svc.CurrentUser())
}
