package tui

import (
	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page after its Init.
type NavigateTo struct {
	Path    string
	Payload any
}

type dueMsg struct {
	plants []models.Plant
}

// notice is a one-line confirmation carried to the next page.
type notice struct {
	text string
}

type registeredNotice struct {
	username string
}

type openPlantMsg struct {
	id int64
}

type editPlantMsg struct {
	plant models.Plant
}

type loginResult struct {
	session session.Session
	err     error
}

type registerResult struct {
	user models.RegisteredUser
	err  error
}

type plantsLoadedMsg struct {
	plants []models.Plant
	err    error
}

type plantLoadedMsg struct {
	plant   models.Plant
	history models.PlantHistory
	err     error
}

type plantSavedMsg struct {
	plant   models.Plant
	created bool
	err     error
}

type wateredMsg struct {
	name     string
	watering models.Watering
	err      error
}

type plantDeletedMsg struct {
	name string
	err  error
}

type recalcDoneMsg struct {
	report service.RecalculationReport
	err    error
}

type outdoorDoneMsg struct {
	result models.OutdoorRecalculation
	err    error
}

type preferenceLoadedMsg struct {
	pref models.ClimatePreference
	err  error
}

type calendarStatusMsg struct {
	status models.CalendarStatus
	err    error
}

type calendarDisconnectedMsg struct {
	message string
	err     error
}

type settingsLoadedMsg struct {
	indoor   models.IndoorSettings
	outdoor  *models.OutdoorLocation
	calendar *models.CalendarSettings
	err      error
}

type settingsSavedMsg struct {
	text string
	err  error
}
