// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/internal/session"
)

// humanizeError turns a service error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, session.ErrNetworkFailure), isServerUnavailable(err):
		return "Sin conexión o servidor no disponible"
	case errors.Is(err, session.ErrSessionExpired):
		return "La sesión expiró, iniciá sesión de nuevo"
	case errors.Is(err, service.ErrWrongPassword):
		return "Usuario o contraseña incorrectos"
	case errors.Is(err, service.ErrUsernameTaken):
		return "Ya existe un usuario con este nombre"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Datos inválidos: " + detailOf(err, service.ErrInvalidDataProvided)
	case errors.Is(err, service.ErrPlantNotFound):
		return "Planta no encontrada"
	case errors.Is(err, service.ErrForbidden):
		return "No tenés permiso para esta acción"
	case errors.Is(err, service.ErrNoClimateData):
		return "No hay temperatura guardada: ingresá una manual o buscá el clima"
	case errors.Is(err, service.ErrNoOutdoorLocation):
		return "No hay localidad configurada"
	case errors.Is(err, service.ErrEmptyLocation):
		return "Ingresá una localidad"
	case errors.Is(err, service.ErrCalendarNotLinked):
		return "Google Calendar no está vinculado"
	case errors.Is(err, service.ErrCalendarProfileNotFound):
		return "Perfil no encontrado"
	case errors.Is(err, adapter.ErrGeocodingDisabled):
		return "Búsqueda de localidades deshabilitada: falta la API key"
	case errors.Is(err, adapter.ErrLocationNotFound):
		return "No se encontró la localidad"
	}

	return err.Error()
}

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}

// detailOf returns the text that follows sentinel in err's message.
func detailOf(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
