package models

// CalendarStatus reports whether Google Calendar is linked.
type CalendarStatus struct {
	Linked bool `json:"is_linked"`
}

// CalendarSettings holds the preferred time of day for watering reminders,
// formatted "HH:MM:SS".
type CalendarSettings struct {
	EventTime string `json:"google_calendar_event_time"`
	Linked    bool   `json:"is_linked"`
}

// CalendarTimeUpdate changes the reminder time. Time is "HH:MM".
type CalendarTimeUpdate struct {
	Time string `json:"time"`
}
