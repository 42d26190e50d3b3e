package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/validators"
)

func wrapped(sentinel error, msg string) error {
	return fmt.Errorf("some request: %w", fmt.Errorf("%w: %s", sentinel, msg))
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "username taken", in: wrapped(adapter.ErrBadRequest, "username: Ya existe un usuario con este nombre."), want: ErrUsernameTaken},
		{name: "other bad request", in: wrapped(adapter.ErrBadRequest, "Temperatura inválida"), want: ErrInvalidDataProvided},
		{name: "forbidden", in: wrapped(adapter.ErrForbidden, "No tiene permiso"), want: ErrForbidden},
		{name: "plant not found", in: wrapped(adapter.ErrNotFound, "No encontrado."), want: ErrPlantNotFound},
		{name: "no outdoor location", in: wrapped(adapter.ErrNotFound, "No hay localidad configurada"), want: ErrNoOutdoorLocation},
		{name: "no calendar profile", in: wrapped(adapter.ErrNotFound, "Perfil no encontrado."), want: ErrCalendarProfileNotFound},
		{name: "other not found", in: wrapped(adapter.ErrNotFound, "Not Found"), want: adapter.ErrNotFound},
		{name: "session expired", in: fmt.Errorf("x: %w", session.ErrSessionExpired), want: session.ErrSessionExpired},
		{name: "server error", in: wrapped(adapter.ErrInternalServerError, "boom"), want: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

func TestMapAdapterError_KeepsServerMessage(t *testing.T) {
	err := mapAdapterError(wrapped(adapter.ErrBadRequest, "Temperatura inválida"))
	assert.Equal(t, "invalid data provided: Temperatura inválida", err.Error())
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "boom", extractBody(wrapped(adapter.ErrBadRequest, "boom"), adapter.ErrBadRequest))
	assert.Equal(t, "plain", extractBody(errors.New("plain"), adapter.ErrBadRequest))
}

func TestMapValidationError(t *testing.T) {
	assert.NoError(t, mapValidationError(nil))
	assert.ErrorIs(t, mapValidationError(validators.ErrEmptyPlantName), ErrInvalidDataProvided)
	assert.NotErrorIs(t, mapValidationError(validators.ErrUnsupportedType), ErrInvalidDataProvided)
}

func TestIsSessionFailure(t *testing.T) {
	assert.True(t, isSessionFailure(fmt.Errorf("x: %w", session.ErrNetworkFailure)))
	assert.True(t, isSessionFailure(session.ErrSessionExpired))
	assert.False(t, isSessionFailure(adapter.ErrNotFound))
}
