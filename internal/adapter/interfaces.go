// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides typed access to the Riegum REST API.
//
// The primary abstraction is [RiegumAPI], which decouples the service layer
// from HTTP. Every call is dispatched through a session client, so
// credentials, the single refresh-and-retry on 401 and the redirect to the
// login page all happen below this package.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrBadRequest] for 400). Session failures such as
// session.ErrSessionExpired and session.ErrNetworkFailure pass through
// unchanged.
package adapter

import (
	"context"

	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SessionDoer is the part of the session client the adapter needs.
type SessionDoer interface {
	Do(ctx context.Context, req session.Request) (*session.Response, error)
	ResolveURL(path string) string
}

// RiegumAPI is the typed Riegum REST API.
type RiegumAPI interface {
	// Register creates an account. It is sent without credentials and is
	// never retried.
	Register(ctx context.Context, reg models.Registration) (models.RegisteredUser, error)

	ListPlants(ctx context.Context) ([]models.Plant, error)
	CreatePlant(ctx context.Context, in models.PlantInput) (models.Plant, error)
	GetPlant(ctx context.Context, id int64) (models.Plant, error)
	UpdatePlant(ctx context.Context, id int64, in models.PlantInput) (models.Plant, error)
	DeletePlant(ctx context.Context, id int64) error
	DeletePlantImage(ctx context.Context, plantID, imageID int64) error

	// WaterPlant records a watering. A nil WaterML lets the server use the
	// recommended amount.
	WaterPlant(ctx context.Context, id int64, in models.WateringInput) (models.Watering, error)
	PlantStatus(ctx context.Context, id int64) (models.WateringStatus, error)
	// RecalculatePlant returns the schedule recomputed for an outside
	// temperature in Celsius.
	RecalculatePlant(ctx context.Context, id int64, temperature float64) (models.WateringStatus, error)
	PlantHistory(ctx context.Context, id int64) (models.PlantHistory, error)
	ListWaterings(ctx context.Context, plantID int64) ([]models.Watering, error)

	GetIndoorSettings(ctx context.Context) (models.IndoorSettings, error)
	UpdateIndoorSettings(ctx context.Context, s models.IndoorSettings) (models.IndoorSettings, error)
	GetOutdoorLocation(ctx context.Context) (models.OutdoorLocation, error)
	SaveOutdoorLocation(ctx context.Context, loc models.OutdoorLocation) (models.OutdoorLocation, error)
	RecalculateOutdoor(ctx context.Context) (models.OutdoorRecalculation, error)
	Weather(ctx context.Context, location string) (models.Climate, error)

	CalendarStatus(ctx context.Context) (models.CalendarStatus, error)
	// DisconnectCalendar unlinks Google Calendar and returns the server
	// message.
	DisconnectCalendar(ctx context.Context) (string, error)
	GetCalendarSettings(ctx context.Context) (models.CalendarSettings, error)
	UpdateCalendarTime(ctx context.Context, hhmm string) (string, error)
	// CalendarLinkURL is the page that starts the Google OAuth flow. It is
	// opened in a browser and carries no credentials.
	CalendarLinkURL() string
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.GeocodeResult, error)
}
