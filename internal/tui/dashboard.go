package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

type dashboardMode int

const (
	dashboardBrowse dashboardMode = iota
	dashboardConfirmDelete
	dashboardConfirmUnlink
	dashboardPromptTemperature
)

// dashboardModel lists the plants of the user with their watering state and
// hosts the actions that touch all of them.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices

	plants   []models.Plant
	idx      int
	loading  bool
	busy     bool
	spinner  spinner.Model
	mode     dashboardMode
	confirm  confirmModel
	prompt   promptModel
	calendar *models.CalendarStatus
	pref     models.ClimatePreference

	status string
	errMsg string
}

func newDashboardModel(ctx context.Context, services *service.ClientServices) *dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &dashboardModel{ctx: ctx, services: services, spinner: s}
}

// Init reloads everything shown on the page.
func (m *dashboardModel) Init() tea.Cmd {
	m.loading = true
	m.busy = false
	m.mode = dashboardBrowse
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoadPlants(), m.cmdCalendarStatus(), m.cmdLoadPreference())
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notice:
		m.status = msg.text
		return m, nil
	case plantsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.plants = sortByUrgency(msg.plants)
		m.clampCursor()
		return m, nil
	case preferenceLoadedMsg:
		if msg.err == nil {
			m.pref = msg.pref
		}
		return m, nil
	case calendarStatusMsg:
		if msg.err != nil {
			m.calendar = nil
			return m, nil
		}
		status := msg.status
		m.calendar = &status
		return m, nil
	case wateredMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("¡%s regada con éxito!", msg.name)
		return m, m.reload()
	case plantDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Planta %s eliminada con éxito", msg.name)
		return m, m.reload()
	case recalcDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = recalcSummary(msg.report)
		m.errMsg = ""
		return m, tea.Batch(m.reload(), m.cmdLoadPreference())
	case outdoorDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = outdoorSummary(msg.result)
		m.errMsg = ""
		return m, m.reload()
	case calendarDisconnectedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = valueOrDash(msg.message)
		return m, m.cmdCalendarStatus()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == dashboardPromptTemperature {
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case dashboardConfirmDelete, dashboardConfirmUnlink:
		return m.handleConfirm(msg)
	case dashboardPromptTemperature:
		return m.handlePrompt(msg)
	}

	if m.busy && !key.Matches(msg, keys.quit) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.plants)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if p, ok := m.current(); ok {
			return m, navigate(DetailPath, openPlantMsg{id: p.ID})
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(AddPath, nil)
	case key.Matches(msg, keys.settings):
		return m, navigate(SettingsPath, nil)
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.water):
		if p, ok := m.current(); ok {
			m.busy = true
			return m, m.cmdWater(p)
		}
	case key.Matches(msg, keys.delete):
		if p, ok := m.current(); ok {
			m.mode = dashboardConfirmDelete
			m.confirm = confirmModel{question: fmt.Sprintf("¿Eliminar la planta %q?", p.Name)}
		}
	case key.Matches(msg, keys.manualTemp):
		value := ""
		if m.pref.ManualTemperature != nil {
			value = formatFloat(*m.pref.ManualTemperature)
		}
		m.mode = dashboardPromptTemperature
		m.prompt = newPromptModel("Temperatura promedio (°C) para recalcular todas las plantas", "24", value)
		return m, textinput.Blink
	case key.Matches(msg, keys.savedTemp):
		m.busy = true
		m.status = "Recalculando..."
		return m, m.cmdRecalculateSaved()
	case key.Matches(msg, keys.outdoor):
		m.busy = true
		m.status = "Recalculando plantas de exterior..."
		return m, m.cmdRecalculateOutdoor()
	case key.Matches(msg, keys.link):
		url := m.services.CalendarService.LinkURL()
		if err := clipboard.WriteAll(url); err != nil {
			m.status = "Abrí este enlace en el navegador: " + url
			return m, nil
		}
		m.status = "Enlace copiado: abrilo en el navegador para vincular Google Calendar"
	case key.Matches(msg, keys.unlink):
		if m.calendar != nil && m.calendar.Linked {
			m.mode = dashboardConfirmUnlink
			m.confirm = confirmModel{question: "¿Desvincular Google Calendar?"}
		}
	case key.Matches(msg, keys.logout):
		auth := m.services.AuthService
		ctx := m.ctx
		m.plants = nil
		m.pref = models.ClimatePreference{}
		m.calendar = nil
		m.status = ""
		return m, func() tea.Msg {
			auth.Logout(ctx)
			return nil
		}
	}

	return m, nil
}

func (m *dashboardModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = dashboardBrowse
		m.busy = true
		if mode == dashboardConfirmUnlink {
			return m, m.cmdDisconnect()
		}
		if p, ok := m.current(); ok {
			return m, m.cmdDelete(p)
		}
		m.busy = false
	case key.Matches(msg, keys.no):
		m.mode = dashboardBrowse
	}
	return m, nil
}

func (m *dashboardModel) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = dashboardBrowse
		return m, nil
	case key.Matches(msg, keys.enter):
		t, err := parseDecimal(m.prompt.input.Value())
		if err != nil {
			m.errMsg = "Ingresá un número, por ejemplo 24,5"
			return m, nil
		}
		m.mode = dashboardBrowse
		m.busy = true
		m.errMsg = ""
		m.status = "Recalculando..."
		return m, m.cmdRecalculateManual(t)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) View() string {
	switch m.mode {
	case dashboardConfirmDelete, dashboardConfirmUnlink:
		return m.confirm.View()
	case dashboardPromptTemperature:
		return m.prompt.View() + "\n" + errorStyle.Render(m.errMsg)
	}

	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Cargando plantas...\n")
	} else if len(m.plants) == 0 {
		b.WriteString("Todavía no agregaste plantas. Presioná a para agregar una.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-24s │ %-8s │ %-7s │ %-10s │ %s\n", "Planta", "Agua", "Días", "Próximo", "Estado"))
		b.WriteString("  " + strings.Repeat("─", 76) + "\n")
		for i, p := range m.plants {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := fmt.Sprintf("%-24s │ %5d ml │ %7d │ %-10s │ %s",
				fitText(p.Name, 24), p.RecommendedWaterML, p.DaysLeft, p.NextWateringDate.String(), valueOrDash(p.StateText))
			b.WriteString(cursor)
			b.WriteString(stateStyle(p.DaysLeft).Render(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("Clima: ")
	b.WriteString(preferenceLine(m.pref))
	b.WriteString("\nGoogle Calendar: ")
	b.WriteString(calendarLine(m.calendar))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Procesando...\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "enter: detalle │ w: regar │ a: agregar │ d: eliminar │ r: recargar\n" +
		"  t: recalcular con temperatura │ c: recalcular con clima guardado │ o: recalcular exterior\n" +
		"  g: vincular calendario │ x: desvincular │ s: ajustes │ L: cerrar sesión │ q: salir"
	return renderPage("MIS PLANTAS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *dashboardModel) current() (models.Plant, bool) {
	if len(m.plants) == 0 || m.idx < 0 || m.idx >= len(m.plants) {
		return models.Plant{}, false
	}
	return m.plants[m.idx], true
}

func (m *dashboardModel) clampCursor() {
	if m.idx >= len(m.plants) {
		m.idx = len(m.plants) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *dashboardModel) setError(err error) {
	m.status = ""
	m.errMsg = humanizeError(err)
}

func (m *dashboardModel) reload() tea.Cmd {
	m.errMsg = ""
	return m.cmdLoadPlants()
}

func (m *dashboardModel) cmdLoadPlants() tea.Cmd {
	ctx, plants := m.ctx, m.services.PlantService
	return func() tea.Msg {
		list, err := plants.List(ctx)
		return plantsLoadedMsg{plants: list, err: err}
	}
}

func (m *dashboardModel) cmdLoadPreference() tea.Cmd {
	ctx, climate := m.ctx, m.services.ClimateService
	return func() tea.Msg {
		pref, err := climate.Preference(ctx)
		return preferenceLoadedMsg{pref: pref, err: err}
	}
}

func (m *dashboardModel) cmdCalendarStatus() tea.Cmd {
	ctx, calendar := m.ctx, m.services.CalendarService
	return func() tea.Msg {
		status, err := calendar.Status(ctx)
		return calendarStatusMsg{status: status, err: err}
	}
}

func (m *dashboardModel) cmdWater(p models.Plant) tea.Cmd {
	ctx, plants := m.ctx, m.services.PlantService
	return func() tea.Msg {
		w, err := plants.Water(ctx, p.ID, models.WateringInput{})
		return wateredMsg{name: p.Name, watering: w, err: err}
	}
}

func (m *dashboardModel) cmdDelete(p models.Plant) tea.Cmd {
	ctx, plants := m.ctx, m.services.PlantService
	return func() tea.Msg {
		return plantDeletedMsg{name: p.Name, err: plants.Delete(ctx, p.ID)}
	}
}

func (m *dashboardModel) cmdRecalculateManual(t float64) tea.Cmd {
	ctx, climate, plants := m.ctx, m.services.ClimateService, m.services.PlantService
	return func() tea.Msg {
		if err := climate.SetManualTemperature(ctx, t); err != nil {
			return recalcDoneMsg{err: err}
		}
		report, err := plants.RecalculateAll(ctx, t)
		return recalcDoneMsg{report: report, err: err}
	}
}

func (m *dashboardModel) cmdRecalculateSaved() tea.Cmd {
	ctx, climate, plants := m.ctx, m.services.ClimateService, m.services.PlantService
	return func() tea.Msg {
		t, err := climate.RecalculationTemperature(ctx)
		if err != nil {
			return recalcDoneMsg{err: err}
		}
		report, err := plants.RecalculateAll(ctx, t)
		return recalcDoneMsg{report: report, err: err}
	}
}

func (m *dashboardModel) cmdRecalculateOutdoor() tea.Cmd {
	ctx, climate := m.ctx, m.services.ClimateService
	return func() tea.Msg {
		result, err := climate.RecalculateOutdoor(ctx)
		return outdoorDoneMsg{result: result, err: err}
	}
}

func (m *dashboardModel) cmdDisconnect() tea.Cmd {
	ctx, calendar := m.ctx, m.services.CalendarService
	return func() tea.Msg {
		message, err := calendar.Disconnect(ctx)
		return calendarDisconnectedMsg{message: message, err: err}
	}
}

func navigate(path string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path, Payload: payload} }
}

// sortByUrgency orders plants by days left, most urgent first, keeping the
// server order among equals.
func sortByUrgency(plants []models.Plant) []models.Plant {
	sorted := make([]models.Plant, len(plants))
	copy(sorted, plants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DaysLeft < sorted[j].DaysLeft
	})
	return sorted
}

func recalcSummary(r service.RecalculationReport) string {
	s := fmt.Sprintf("Recalculadas %d plantas con %s °C", len(r.Updated), formatFloat(r.Temperature))
	if len(r.Failed) > 0 {
		s += fmt.Sprintf(" (%d no se pudieron actualizar)", len(r.Failed))
	}
	return s
}

func outdoorSummary(r models.OutdoorRecalculation) string {
	s := valueOrDash(r.Message)
	if r.Climate != nil {
		s += fmt.Sprintf(" │ máx %s °C, lluvia %s mm", formatFloat(r.Climate.MaxTemperature), formatFloat(r.Climate.Precipitation))
	}
	return s
}

func preferenceLine(p models.ClimatePreference) string {
	switch {
	case p.ManualTemperature != nil:
		return formatFloat(*p.ManualTemperature) + " °C (manual)"
	case p.SavedClimate != nil:
		s := formatFloat(p.SavedClimate.MaxTemperature) + " °C"
		if p.SavedClimate.Location != "" {
			s += " en " + p.SavedClimate.Location
		}
		return s
	default:
		return "sin datos"
	}
}

func calendarLine(s *models.CalendarStatus) string {
	switch {
	case s == nil:
		return "desconocido"
	case s.Linked:
		return "vinculado"
	default:
		return "no vinculado"
	}
}
