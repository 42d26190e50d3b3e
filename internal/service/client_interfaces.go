package service

import (
	"context"
	"time"

	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/models"
)

// ClientAuthService defines the client-side contract for registration and
// the session lifecycle.
type ClientAuthService interface {
	// Register validates the form and creates the account. It does not log
	// in.
	Register(ctx context.Context, reg models.Registration) (models.RegisteredUser, error)

	// Login authenticates with the server. Rejected credentials are returned
	// as ErrWrongPassword wrapping the server message.
	Login(ctx context.Context, username, password string) (session.Session, error)

	// Logout ends the session. It never fails: local state is cleared even
	// when the server cannot be reached.
	Logout(ctx context.Context)

	// RestoreSession resumes the session persisted by a previous run.
	// Returns session.ErrNoSession when there is nothing to resume.
	RestoreSession(ctx context.Context) (session.Session, error)

	// CurrentUser returns the display name of the logged-in user, or ""
	// while anonymous.
	CurrentUser() string
}

// RecalculationReport summarizes a recalculation of every plant.
type RecalculationReport struct {
	Temperature float64
	Updated     []models.Plant
	// Failed maps plant IDs to the error that stopped their recalculation.
	Failed map[int64]error
}

// ClientPlantService defines the client-side contract for plants and their
// waterings.
type ClientPlantService interface {
	List(ctx context.Context) ([]models.Plant, error)
	Get(ctx context.Context, id int64) (models.Plant, error)
	Create(ctx context.Context, in models.PlantInput) (models.Plant, error)
	Update(ctx context.Context, id int64, in models.PlantInput) (models.Plant, error)
	Delete(ctx context.Context, id int64) error
	DeleteImage(ctx context.Context, plantID, imageID int64) error

	// Water records a watering. A nil WaterML waters the recommended
	// amount.
	Water(ctx context.Context, id int64, in models.WateringInput) (models.Watering, error)
	History(ctx context.Context, id int64) (models.PlantHistory, error)

	// RecalculateAll recomputes the schedule of every plant for the given
	// temperature. A plant that fails is recorded in the report and does
	// not stop the others; an error is returned only when the plant list
	// itself cannot be loaded.
	RecalculateAll(ctx context.Context, temperature float64) (RecalculationReport, error)

	// Due returns the plants that need water today or are overdue.
	Due(ctx context.Context) ([]models.Plant, error)
}

// ClientClimateService defines the client-side contract for the climate
// inputs of recalculation.
type ClientClimateService interface {
	// Preference returns the manual temperature or saved climate of the
	// current user. At most one of them is set.
	Preference(ctx context.Context) (models.ClimatePreference, error)

	// SetManualTemperature remembers t and forgets any saved climate.
	SetManualTemperature(ctx context.Context, t float64) error

	// FetchClimate looks up the current weather for location and remembers
	// it, forgetting any manual temperature.
	FetchClimate(ctx context.Context, location string) (models.Climate, error)

	// RecalculationTemperature picks the temperature a manual
	// recalculation uses: the manual value first, then the saved climate.
	// Returns ErrNoClimateData when neither is set.
	RecalculationTemperature(ctx context.Context) (float64, error)

	IndoorSettings(ctx context.Context) (models.IndoorSettings, error)
	UpdateIndoorSettings(ctx context.Context, s models.IndoorSettings) (models.IndoorSettings, error)

	// OutdoorLocation returns ErrNoOutdoorLocation when none is saved.
	OutdoorLocation(ctx context.Context) (models.OutdoorLocation, error)

	// SetOutdoorLocation geocodes place, saves it as the outdoor location
	// and recalculates the outdoor plants with the forecast there.
	SetOutdoorLocation(ctx context.Context, place string) (models.OutdoorRecalculation, error)

	// RecalculateOutdoor recalculates the outdoor plants for the saved
	// location.
	RecalculateOutdoor(ctx context.Context) (models.OutdoorRecalculation, error)
}

// ClientCalendarService defines the client-side contract for the Google
// Calendar integration.
type ClientCalendarService interface {
	Status(ctx context.Context) (models.CalendarStatus, error)
	// Disconnect unlinks the calendar and returns the server message.
	Disconnect(ctx context.Context) (string, error)
	// LinkURL is the page that starts linking, to be opened in a browser.
	LinkURL() string
	Settings(ctx context.Context) (models.CalendarSettings, error)
	// UpdateEventTime changes the reminder time ("HH:MM"). It is refused
	// with ErrCalendarNotLinked while the calendar is not linked.
	UpdateEventTime(ctx context.Context, hhmm string) (string, error)
}

// DueNotifier receives the plants that need water after each poll.
type DueNotifier func(due []models.Plant)

// ClientWateringWatchJob defines the contract for a background worker that
// periodically looks for plants that need water.
type ClientWateringWatchJob interface {
	// Start launches the background goroutine. It polls every interval,
	// defaulting to 15 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration, notify DueNotifier)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
