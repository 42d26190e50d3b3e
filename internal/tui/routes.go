package tui

import "github.com/MKhiriev/riegum-client/internal/session"

// Paths of the screens. The public ones come from the session package so
// forced redirects land on pages the router knows.
const (
	HomePath      = session.HomePath
	LoginPath     = session.LoginPath
	RegisterPath  = "/register/"
	DashboardPath = "/dashboard/"
	AddPath       = "/add/"
	DetailPath    = "/detail/"
	SettingsPath  = "/settings/"
)
