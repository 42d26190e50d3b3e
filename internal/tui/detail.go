package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

const maxHistoryRows = 10

type detailMode int

const (
	detailBrowse detailMode = iota
	detailWatering
	detailConfirmDelete
)

// detailModel shows one plant: its schedule, its history and statistics.
// Watering here may use a custom amount and a comment.
type detailModel struct {
	ctx    context.Context
	plants service.ClientPlantService

	id      int64
	plant   models.Plant
	history models.PlantHistory
	loaded  bool
	loading bool
	busy    bool

	mode        detailMode
	waterInputs []textinput.Model
	waterFocus  int
	confirm     confirmModel

	status string
	errMsg string
}

func newDetailModel(ctx context.Context, plants service.ClientPlantService) *detailModel {
	amount := textinput.New()
	amount.Placeholder = "recomendado"
	amount.CharLimit = 6
	amount.Width = 12

	comment := textinput.New()
	comment.Placeholder = "comentario (opcional)"
	comment.CharLimit = 200
	comment.Width = 40

	return &detailModel{
		ctx:         ctx,
		plants:      plants,
		waterInputs: []textinput.Model{amount, comment},
	}
}

// Init keeps the last plant until an openPlantMsg says which one to show.
func (m *detailModel) Init() tea.Cmd {
	m.mode = detailBrowse
	m.busy = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPlantMsg:
		if msg.id != m.id {
			m.plant = models.Plant{}
			m.history = models.PlantHistory{}
			m.loaded = false
		}
		m.id = msg.id
		return m, m.load()
	case plantLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.plant = msg.plant
		m.history = msg.history
		m.loaded = true
		return m, nil
	case wateredMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "¡Planta regada con éxito!"
		if msg.watering.WaterML != nil {
			m.status = fmt.Sprintf("¡Planta regada con éxito! (%d ml)", *msg.watering.WaterML)
		}
		return m, m.load()
	case plantDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(DashboardPath, notice{text: fmt.Sprintf("Planta %s eliminada con éxito", msg.name)})
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == detailWatering {
		var cmd tea.Cmd
		m.waterInputs[m.waterFocus], cmd = m.waterInputs[m.waterFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *detailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case detailWatering:
		return m.handleWateringKey(msg)
	case detailConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			m.mode = detailBrowse
			m.busy = true
			return m, m.cmdDelete()
		case key.Matches(msg, keys.no):
			m.mode = detailBrowse
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(DashboardPath, nil)
	case key.Matches(msg, keys.reload):
		return m, m.load()
	case !m.loaded:
		return m, nil
	case key.Matches(msg, keys.water):
		m.mode = detailWatering
		m.errMsg = ""
		m.waterInputs[0].SetValue("")
		m.waterInputs[1].SetValue("")
		m.waterFocus = 0
		m.waterInputs[1].Blur()
		m.waterInputs[0].Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		return m, navigate(AddPath, editPlantMsg{plant: m.plant})
	case key.Matches(msg, keys.delete):
		m.mode = detailConfirmDelete
		m.confirm = confirmModel{question: fmt.Sprintf("¿Eliminar la planta %q?", m.plant.Name)}
	}

	return m, nil
}

func (m *detailModel) handleWateringKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = detailBrowse
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.waterInputs[m.waterFocus].Blur()
		m.waterFocus = 1 - m.waterFocus
		m.waterInputs[m.waterFocus].Focus()
		return m, nil
	case "enter":
		in := models.WateringInput{Comments: strings.TrimSpace(m.waterInputs[1].Value())}
		if raw := strings.TrimSpace(m.waterInputs[0].Value()); raw != "" {
			ml, err := strconv.Atoi(raw)
			if err != nil {
				m.errMsg = "La cantidad de agua debe ser un número entero de ml"
				return m, nil
			}
			in.WaterML = &ml
		}
		m.mode = detailBrowse
		m.busy = true
		m.errMsg = ""
		return m, m.cmdWater(in)
	}

	var cmd tea.Cmd
	m.waterInputs[m.waterFocus], cmd = m.waterInputs[m.waterFocus].Update(msg)
	return m, cmd
}

func (m *detailModel) View() string {
	if m.mode == detailConfirmDelete {
		return m.confirm.View()
	}

	var b strings.Builder

	switch {
	case m.loading && !m.loaded:
		b.WriteString("Cargando...\n")
	case !m.loaded:
		b.WriteString("No se pudo cargar el detalle de la planta.\n")
	default:
		m.writePlant(&b)
	}

	if m.mode == detailWatering {
		b.WriteString("\nRegar\n")
		b.WriteString("Agua (ml)   │ [" + m.waterInputs[0].View() + "]\n")
		b.WriteString("Comentario  │ [" + m.waterInputs[1].View() + "]\n")
	}
	if m.busy {
		b.WriteString("\nProcesando...\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "w: regar │ e: editar │ d: eliminar │ r: recargar │ esc: volver"
	if m.mode == detailWatering {
		hotKeys = "tab: campo │ enter: regar (vacío = cantidad recomendada) │ esc: cancelar"
	}

	title := "DETALLE"
	if m.loaded {
		title = "DETALLE │ " + strings.ToUpper(m.plant.Name)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *detailModel) writePlant(b *strings.Builder) {
	p := m.plant
	rows := [][2]string{
		{"Tipo", string(p.Type)},
		{"Tamaño", string(p.Size)},
		{"Cultivo", string(p.Cultivation)},
		{"Maceta", formatFloat(p.PotLiters) + " L"},
		{"Último riego", p.LastWatered.String()},
		{"En floración", yesNo(p.Flowering)},
		{"Estado", p.StateText},
		{"Sugerencia", p.SupplementHint},
		{"Recomendado", fmt.Sprintf("%d ml", p.RecommendedWaterML)},
		{"Frecuencia", fmt.Sprintf("%d días", p.FrequencyDays)},
		{"Próximo riego", p.NextWateringDate.String()},
		{"Días restantes", strconv.Itoa(p.DaysLeft)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-15s │ %s\n", r[0], valueOrDash(r[1])))
	}

	s := m.history.Stats
	b.WriteString("\nEstadísticas\n")
	b.WriteString(fmt.Sprintf("Riegos: %d │ Total: %d ml │ Promedio: %s ml │ Máx: %d ml │ Mín: %d ml\n",
		s.TotalWaterings, s.TotalWaterML, formatFloat(s.AverageWaterML), s.MaxWaterML, s.MinWaterML))
	b.WriteString(fmt.Sprintf("Primer riego: %s │ Último: %s │ Frecuencia promedio: %s días\n",
		valueOrDash(s.FirstWatering.String()), valueOrDash(s.LastWatering.String()), floatOrDash(s.AverageFrequency)))

	b.WriteString("\nHistorial\n")
	if len(m.history.Waterings) == 0 {
		b.WriteString("Sin riegos registrados\n")
		return
	}
	for i, w := range m.history.Waterings {
		if i == maxHistoryRows {
			b.WriteString(fmt.Sprintf("... y %d más\n", len(m.history.Waterings)-maxHistoryRows))
			break
		}
		amount := "-"
		if w.WaterML != nil {
			amount = fmt.Sprintf("%d ml", *w.WaterML)
		}
		b.WriteString(fmt.Sprintf("%s │ %8s │ %s\n", w.Date.String(), amount, fitText(valueOrDash(w.Comments), 40)))
	}
}

func (m *detailModel) load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx, plants, id := m.ctx, m.plants, m.id

	return func() tea.Msg {
		p, err := plants.Get(ctx, id)
		if err != nil {
			return plantLoadedMsg{err: err}
		}
		h, err := plants.History(ctx, id)
		return plantLoadedMsg{plant: p, history: h, err: err}
	}
}

func (m *detailModel) cmdWater(in models.WateringInput) tea.Cmd {
	ctx, plants, p := m.ctx, m.plants, m.plant
	return func() tea.Msg {
		w, err := plants.Water(ctx, p.ID, in)
		return wateredMsg{name: p.Name, watering: w, err: err}
	}
}

func (m *detailModel) cmdDelete() tea.Cmd {
	ctx, plants, p := m.ctx, m.plants, m.plant
	return func() tea.Msg {
		return plantDeletedMsg{name: p.Name, err: plants.Delete(ctx, p.ID)}
	}
}
