// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

const (
	setIndoorTemperature = iota
	setIndoorHumidity
	setOutdoorLocation
	setWeatherLocation
	setEventTime
)

var settingsLabels = []string{
	setIndoorTemperature: "Temperatura interior (°C)",
	setIndoorHumidity:    "Humedad relativa (%)",
	setOutdoorLocation:   "Localidad exterior",
	setWeatherLocation:   "Buscar clima en",
	setEventTime:         "Hora del recordatorio",
}

// settingsModel edits the indoor environment, the outdoor location, the
// saved climate and the calendar reminder time. Enter saves the group of
// the focused field.
type settingsModel struct {
	ctx      context.Context
	climate  service.ClientClimateService
	calendar service.ClientCalendarService

	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool

	outdoor  *models.OutdoorLocation
	settings *models.CalendarSettings

	status string
	errMsg string
}

func newSettingsModel(ctx context.Context, climate service.ClientClimateService, calendar service.ClientCalendarService) *settingsModel {
	placeholders := []string{"24", "60", "Córdoba, Argentina", "Rosario", "08:00"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].CharLimit = 120
		inputs[i].Width = 30
	}
	inputs[setEventTime].CharLimit = 5
	inputs[0].Focus()

	return &settingsModel{ctx: ctx, climate: climate, calendar: calendar, inputs: inputs}
}

func (m *settingsModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.submitting = false
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg)
		return m, nil
	case settingsSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = ""
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.text
		return m, m.cmdLoad()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(DashboardPath, nil)
		case "tab", "down":
			m.focusOn(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.focusOn(m.focus - 1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			cmd, err := m.save()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *settingsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Cargando...\n\n")
	}

	for i, label := range settingsLabels {
		switch i {
		case setIndoorTemperature:
			b.WriteString("Interior\n")
		case setOutdoorLocation:
			b.WriteString("\nExterior\n")
		case setEventTime:
			b.WriteString("\nGoogle Calendar (" + m.calendarState() + ")\n")
		}

		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-26s │ [%s]\n", cursor, label, m.inputs[i].View()))
	}

	if m.outdoor != nil {
		b.WriteString(fmt.Sprintf("\nLocalidad guardada: %s (%.4f, %.4f)\n", m.outdoor.Name, m.outdoor.Latitude, m.outdoor.Longitude))
	}
	if m.submitting {
		b.WriteString("\nGuardando...\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("AJUSTES", strings.TrimRight(b.String(), "\n"), "tab/↑/↓: campo │ enter: guardar el campo │ esc: volver")
}

func (m *settingsModel) calendarState() string {
	if m.settings == nil {
		return "desconocido"
	}
	return calendarLine(&models.CalendarStatus{Linked: m.settings.Linked})
}

func (m *settingsModel) fill(msg settingsLoadedMsg) {
	m.inputs[setIndoorTemperature].SetValue(floatOrEmpty(msg.indoor.Temperature))
	m.inputs[setIndoorHumidity].SetValue(floatOrEmpty(msg.indoor.RelativeHumidity))

	m.outdoor = msg.outdoor
	if msg.outdoor != nil && m.focus != setOutdoorLocation {
		m.inputs[setOutdoorLocation].SetValue(msg.outdoor.Name)
	}

	m.settings = msg.calendar
	if msg.calendar != nil && len(msg.calendar.EventTime) >= 5 {
		m.inputs[setEventTime].SetValue(msg.calendar.EventTime[:5])
	}
}

// save builds the command for the group of the focused field.
func (m *settingsModel) save() (tea.Cmd, error) {
	ctx := m.ctx
	value := strings.TrimSpace(m.inputs[m.focus].Value())

	switch m.focus {
	case setIndoorTemperature, setIndoorHumidity:
		s, err := m.indoorInput()
		if err != nil {
			return nil, err
		}
		climate := m.climate
		return func() tea.Msg {
			_, err := climate.UpdateIndoorSettings(ctx, s)
			return settingsSavedMsg{text: "Configuración indoor guardada con éxito", err: err}
		}, nil
	case setOutdoorLocation:
		climate := m.climate
		return func() tea.Msg {
			result, err := climate.SetOutdoorLocation(ctx, value)
			return settingsSavedMsg{text: outdoorSummary(result), err: err}
		}, nil
	case setWeatherLocation:
		climate := m.climate
		return func() tea.Msg {
			c, err := climate.FetchClimate(ctx, value)
			if err != nil {
				return settingsSavedMsg{err: err}
			}
			where := c.Location
			if where == "" {
				where = value
			}
			text := fmt.Sprintf("Clima en %s: máx %s °C, lluvia %s mm. Se usará al recalcular.",
				where, formatFloat(c.MaxTemperature), formatFloat(c.Precipitation))
			return settingsSavedMsg{text: text}
		}, nil
	case setEventTime:
		if value == "" {
			return nil, errors.New("seleccioná una hora")
		}
		calendar := m.calendar
		return func() tea.Msg {
			message, err := calendar.UpdateEventTime(ctx, value)
			return settingsSavedMsg{text: valueOrDash(message), err: err}
		}, nil
	}
	return nil, nil
}

func (m *settingsModel) indoorInput() (models.IndoorSettings, error) {
	var s models.IndoorSettings

	if raw := m.inputs[setIndoorTemperature].Value(); strings.TrimSpace(raw) != "" {
		t, err := parseDecimal(raw)
		if err != nil {
			return s, errors.New("la temperatura debe ser un número")
		}
		s.Temperature = &t
	}
	if raw := m.inputs[setIndoorHumidity].Value(); strings.TrimSpace(raw) != "" {
		h, err := parseDecimal(raw)
		if err != nil {
			return s, errors.New("la humedad debe ser un número")
		}
		s.RelativeHumidity = &h
	}
	return s, nil
}

func (m *settingsModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx, climate, calendar := m.ctx, m.climate, m.calendar

	return func() tea.Msg {
		indoor, err := climate.IndoorSettings(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		msg := settingsLoadedMsg{indoor: indoor}

		outdoor, err := climate.OutdoorLocation(ctx)
		switch {
		case err == nil:
			msg.outdoor = &outdoor
		case !errors.Is(err, service.ErrNoOutdoorLocation):
			return settingsLoadedMsg{err: err}
		}

		if s, err := calendar.Settings(ctx); err == nil {
			msg.calendar = &s
		}
		return msg
	}
}

func (m *settingsModel) focusOn(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
