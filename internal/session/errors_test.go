package session

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "detail", status: 401, body: `{"detail":"Token is invalid or expired","code":"token_not_valid"}`, want: "Token is invalid or expired"},
		{name: "error", status: 400, body: `{"error":"Se requiere el parámetro temperatura"}`, want: "Se requiere el parámetro temperatura"},
		{name: "mensaje", status: 200, body: `{"mensaje":"Recalculado"}`, want: "Recalculado"},
		{name: "field errors", status: 400, body: `{"username":["Ya existe."],"email":["Inválido.","Requerido."]}`, want: "email: Inválido. Requerido.; username: Ya existe."},
		{name: "plain text", status: 400, body: " bad input \n", want: "bad input"},
		{name: "html", status: 502, body: "<html><body>Bad gateway</body></html>", want: "Bad Gateway"},
		{name: "empty", status: 404, body: "", want: "Not Found"},
		{name: "too long", status: 500, body: strings.Repeat("x", 201), want: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ServerMessage(tt.status, []byte(tt.body)))
		})
	}
}

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, CheckStatus(&Response{StatusCode: http.StatusCreated}))

	err := CheckStatus(&Response{StatusCode: http.StatusNotFound, Body: []byte(`{"detail":"No encontrado."}`)})
	var serverErr *ServerError
	assert.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
	assert.Equal(t, "http 404: No encontrado.", err.Error())
}

func TestInvalidCredentialsError(t *testing.T) {
	err := error(&InvalidCredentialsError{Message: "No active account"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "No active account", err.Error())
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestIsPublicPath(t *testing.T) {
	for _, p := range PublicPaths {
		assert.True(t, IsPublicPath(p), p)
	}
	for _, p := range []string{"", "/plantas/", "/login", "/LOGIN/", "/terms/?x=1"} {
		assert.False(t, IsPublicPath(p), p)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "refreshing", Refreshing.String())
	assert.Equal(t, "unknown", State(9).String())
}
