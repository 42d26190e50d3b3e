package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type welcomeItem struct {
	label string
	path  string
}

// welcomeModel is the public home page.
type welcomeModel struct {
	items  []welcomeItem
	idx    int
	status string
}

func newWelcomeModel() *welcomeModel {
	return &welcomeModel{
		items: []welcomeItem{
			{label: "Iniciar sesión", path: LoginPath},
			{label: "Registrarse", path: RegisterPath},
			{label: "Salir"},
		},
	}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(notice); ok {
		m.status = n.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.path == "" {
			return m, tea.Quit
		}
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Path: item.path} }
	}

	return m, nil
}

func (m *welcomeModel) View() string {
	var b strings.Builder

	b.WriteString("Seguimiento de riego de tus plantas.\n\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %s\n", cursor, i+1, item.label))
	}
	writeFeedback(&b, m.status, "")

	return renderPage("RIEGUM", strings.TrimRight(b.String(), "\n"), "enter: elegir │ ↑/↓: navegar │ v: versión │ q: salir")
}
