package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

// formField is one row of the plant form: either free text or a choice
// cycled with the arrow keys.
type formField struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func (f formField) value() string {
	if f.choices != nil {
		return f.choices[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

func (f *formField) selectValue(v string) {
	for i, c := range f.choices {
		if c == v {
			f.choice = i
			return
		}
	}
	f.choice = 0
}

const (
	fieldName = iota
	fieldType
	fieldSize
	fieldCultivation
	fieldPot
	fieldLastWatered
	fieldFlowering
)

var (
	plantTypeChoices   = []string{string(models.PlantTypeAuto), string(models.PlantTypeFoto)}
	plantSizeChoices   = []string{string(models.PlantSizeSmall), string(models.PlantSizeMedium), string(models.PlantSizeLarge)}
	cultivationChoices = []string{string(models.CultivationIndoor), string(models.CultivationOutdoor)}
	floweringChoices   = []string{"No", "Sí"}
)

// plantFormModel adds a plant, or edits one when opened with an
// editPlantMsg.
type plantFormModel struct {
	ctx    context.Context
	plants service.ClientPlantService
	now    func() time.Time

	fields     []formField
	focus      int
	editingID  int64
	submitting bool
	errMsg     string
}

func newPlantFormModel(ctx context.Context, plants service.ClientPlantService) *plantFormModel {
	m := &plantFormModel{ctx: ctx, plants: plants, now: time.Now}
	m.reset()
	return m
}

func (m *plantFormModel) reset() {
	text := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 30
		return in
	}

	m.fields = []formField{
		fieldName:        {label: "Nombre", input: text("Mi planta", 100)},
		fieldType:        {label: "Tipo", choices: plantTypeChoices},
		fieldSize:        {label: "Tamaño", choices: plantSizeChoices},
		fieldCultivation: {label: "Cultivo", choices: cultivationChoices},
		fieldPot:         {label: "Maceta (L)", input: text("10", 8)},
		fieldLastWatered: {label: "Último riego", input: text(models.DateLayout, 10)},
		fieldFlowering:   {label: "En floración", choices: floweringChoices},
	}
	m.fields[fieldLastWatered].input.SetValue(models.NewDate(m.now()).String())
	m.fields[fieldSize].choice = 1

	m.focus = fieldName
	m.fields[fieldName].input.Focus()
	m.editingID = 0
	m.submitting = false
	m.errMsg = ""
}

// Init starts a blank form; an editPlantMsg right after fills it.
func (m *plantFormModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *plantFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editPlantMsg:
		m.fill(msg.plant)
		return m, nil
	case plantSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		text := "Planta agregada: " + msg.plant.Name
		if !msg.created {
			text = "Cambios guardados: " + msg.plant.Name
		}
		return m, navigate(DashboardPath, notice{text: text})
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *plantFormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.fields[m.focus]

	switch {
	case key.Matches(msg, keys.esc):
		if m.editingID != 0 {
			return m, navigate(DetailPath, openPlantMsg{id: m.editingID})
		}
		return m, navigate(DashboardPath, nil)
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		in, err := m.input()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(in)
	case key.Matches(msg, keys.tab):
		m.focusOn(m.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focusOn(m.focus - 1)
		return m, nil
	case f.choices != nil && key.Matches(msg, keys.right):
		f.choice = (f.choice + 1) % len(f.choices)
		return m, nil
	case f.choices != nil && key.Matches(msg, keys.left):
		f.choice = (f.choice - 1 + len(f.choices)) % len(f.choices)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *plantFormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.fields[m.focus].choices != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *plantFormModel) View() string {
	var b strings.Builder
	b.WriteString("Campo         │ Valor\n")
	b.WriteString("──────────────┼──────────────────────────────────\n")
	for i, f := range m.fields {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-12s│ ", cursor, f.label))
		if f.choices != nil {
			b.WriteString("‹ " + f.value() + " ›")
		} else {
			b.WriteString("[" + f.input.View() + "]")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Guardando...]\n")
	} else {
		b.WriteString("\n[Guardar]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	title := "NUEVA PLANTA"
	if m.editingID != 0 {
		title = "EDITAR PLANTA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab/↑/↓: campo │ ←/→: cambiar opción │ enter: guardar │ esc: cancelar")
}

// input reads the form. Only parsing happens here; the rules live in the
// service validator.
func (m *plantFormModel) input() (models.PlantInput, error) {
	in := models.PlantInput{
		Name:        m.fields[fieldName].value(),
		Type:        models.PlantType(m.fields[fieldType].value()),
		Size:        models.PlantSize(m.fields[fieldSize].value()),
		Cultivation: models.Cultivation(m.fields[fieldCultivation].value()),
		Flowering:   m.fields[fieldFlowering].choice == 1,
	}

	pot, err := parseDecimal(m.fields[fieldPot].value())
	if err != nil {
		return models.PlantInput{}, errors.New("el tamaño de maceta debe ser un número en litros")
	}
	in.PotLiters = pot

	last, err := models.ParseDate(m.fields[fieldLastWatered].value())
	if err != nil {
		return models.PlantInput{}, fmt.Errorf("la fecha de último riego debe tener el formato %s", models.DateLayout)
	}
	in.LastWatered = last

	return in, nil
}

func (m *plantFormModel) fill(p models.Plant) {
	m.editingID = p.ID
	m.fields[fieldName].input.SetValue(p.Name)
	m.fields[fieldType].selectValue(string(p.Type))
	m.fields[fieldSize].selectValue(string(p.Size))
	cultivation := p.Cultivation
	if cultivation == "" {
		cultivation = models.CultivationIndoor
	}
	m.fields[fieldCultivation].selectValue(string(cultivation))
	m.fields[fieldPot].input.SetValue(formatFloat(p.PotLiters))
	m.fields[fieldLastWatered].input.SetValue(p.LastWatered.String())
	if p.Flowering {
		m.fields[fieldFlowering].choice = 1
	}
}

func (m *plantFormModel) cmdSave(in models.PlantInput) tea.Cmd {
	ctx, plants, id := m.ctx, m.plants, m.editingID

	return func() tea.Msg {
		if id == 0 {
			p, err := plants.Create(ctx, in)
			return plantSavedMsg{plant: p, created: true, err: err}
		}
		p, err := plants.Update(ctx, id, in)
		return plantSavedMsg{plant: p, err: err}
	}
}

func (m *plantFormModel) focusOn(i int) {
	if m.fields[m.focus].choices == nil {
		m.fields[m.focus].input.Blur()
	}
	m.focus = (i + len(m.fields)) % len(m.fields)
	if m.fields[m.focus].choices == nil {
		m.fields[m.focus].input.Focus()
	}
}
