package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

type clientAuthService struct {
	session   SessionManager
	adapter   adapter.RiegumAPI
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(sess SessionManager, api adapter.RiegumAPI, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: sess, adapter: api, validator: validator, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, reg models.Registration) (models.RegisteredUser, error) {
	if err := a.validator.Validate(ctx, reg); err != nil {
		return models.RegisteredUser{}, mapValidationError(err)
	}

	user, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.logger.Info().Str("user", user.Username).Msg("account registered")
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (session.Session, error) {
	creds := models.Registration{Username: username, Password: password}
	if err := a.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		return session.Session{}, mapValidationError(err)
	}

	sess, err := a.session.Login(ctx, username, password)
	if err != nil {
		var invalid *session.InvalidCredentialsError
		if errors.As(err, &invalid) {
			return session.Session{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return session.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return sess, nil
}

func (a *clientAuthService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (session.Session, error) {
	sess, err := a.session.Restore(ctx)
	if err != nil {
		return session.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.logger.Debug().Str("user", sess.DisplayName).Msg("session restored")
	return sess, nil
}

func (a *clientAuthService) CurrentUser() string {
	if a.session.State() == session.Anonymous {
		return ""
	}
	return a.session.Session().DisplayName
}
