package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrNotLoggedIn         = errors.New("not logged in")

	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")

	ErrPlantNotFound = errors.New("plant not found")
	ErrForbidden     = errors.New("access to the resource is forbidden")

	ErrNoClimateData     = errors.New("no temperature available for recalculation")
	ErrNoOutdoorLocation = errors.New("no outdoor location configured")
	ErrEmptyLocation     = errors.New("location is required")

	ErrCalendarNotLinked       = errors.New("google calendar is not linked")
	ErrCalendarProfileNotFound = errors.New("calendar profile not found")
)
