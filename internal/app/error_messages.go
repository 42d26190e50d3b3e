// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the Riegum API writes into its
// response bodies.
//
// The service layer matches on them to turn a generic HTTP status into a
// specific business error, and the fake API in internal/testutil answers
// with them, so both sides agree on the wording.
package app

const (
	// MsgNoActiveAccount is the 401 detail of a rejected login.
	MsgNoActiveAccount = "No active account found with the given credentials"

	// MsgCredentialsNotProvided is the 401 detail of a request without an
	// access cookie.
	MsgCredentialsNotProvided = "Authentication credentials were not provided."

	// MsgTokenNotValid is the 401 detail of a request whose access cookie is
	// expired, revoked or forged.
	MsgTokenNotValid = "Given token not valid for any token type"

	// MsgRefreshTokenNotFound is the 401 detail of a refresh without a
	// refresh cookie.
	MsgRefreshTokenNotFound = "Refresh token no encontrado"

	// MsgRefreshTokenInvalid is the 401 detail of a refresh with an expired
	// or revoked refresh cookie.
	MsgRefreshTokenInvalid = "Token is invalid or expired"

	MsgLoginSucceeded   = "Login exitoso"
	MsgRefreshSucceeded = "Token refrescado exitosamente"
	MsgLogoutSucceeded  = "Logout exitoso"

	// MsgUsernameTaken is the field error of a registration whose username
	// already exists.
	MsgUsernameTaken = "Ya existe un usuario con este nombre."

	// MsgFieldRequired is the field error of a missing required field.
	MsgFieldRequired = "Este campo es requerido."

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "JSON inválido"

	// MsgNotFound is the 404 detail for a plant that does not exist or
	// belongs to someone else.
	MsgNotFound = "No encontrado."

	// MsgTemperatureRequired is returned by a recalculation without the
	// temperatura query parameter.
	MsgTemperatureRequired = "Se requiere el parámetro temperatura"

	// MsgInvalidTemperature is returned by a recalculation whose temperatura
	// is not a number.
	MsgInvalidTemperature = "Temperatura inválida"

	// MsgNoOutdoorLocation is returned when outdoor recalculation is asked
	// for before a location was saved.
	MsgNoOutdoorLocation = "No hay localidad configurada"

	// MsgProfileNotFound is returned by the calendar endpoints for a user
	// without a calendar profile.
	MsgProfileNotFound = "Perfil no encontrado."

	// MsgCalendarNotLinked is returned when the reminder time is changed
	// while Google Calendar is not linked.
	MsgCalendarNotLinked = "Google Calendar no está vinculado."
)
