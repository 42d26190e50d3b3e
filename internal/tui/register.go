package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

const (
	regUsername = iota
	regEmail
	regPassword
	regRepeat
)

// registerModel is the Bubble Tea model for the registration screen. It renders four
// text inputs (username, email, password and its confirmation) and dispatches an
// async registration command on form submission. On success the form is reset and
// the login page opens with the new username filled in.
type registerModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel(ctx context.Context, auth service.ClientAuthService) *registerModel {
	fields := make([]textinput.Model, 4)

	fields[regUsername] = textinput.New()
	fields[regUsername].Placeholder = "usuario"
	fields[regUsername].CharLimit = 150
	fields[regUsername].Width = 40
	fields[regUsername].Focus()

	fields[regEmail] = textinput.New()
	fields[regEmail].Placeholder = "correo@ejemplo.com (opcional)"
	fields[regEmail].CharLimit = 254
	fields[regEmail].Width = 40

	fields[regPassword] = textinput.New()
	fields[regPassword].Placeholder = "contraseña"
	fields[regPassword].EchoMode = textinput.EchoPassword
	fields[regPassword].EchoCharacter = '*'
	fields[regPassword].Width = 40

	fields[regRepeat] = textinput.New()
	fields[regRepeat].Placeholder = "repetir contraseña"
	fields[regRepeat].EchoMode = textinput.EchoPassword
	fields[regRepeat].EchoCharacter = '*'
	fields[regRepeat].Width = 40

	return &registerModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *registerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Passwords must match before the form is
// sent; every other rule is checked by the service and the server.
func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResult:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Path: LoginPath, Payload: registeredNotice{username: msg.user.Username}}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Path: HomePath} }
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

			reg := models.Registration{
				Username: strings.TrimSpace(m.inputs[regUsername].Value()),
				Email:    strings.TrimSpace(m.inputs[regEmail].Value()),
				Password: m.inputs[regPassword].Value(),
			}
			if reg.Username == "" || reg.Password == "" {
				m.errMsg = "Usuario y contraseña son obligatorios"
				return m, nil
			}
			if reg.Password != m.inputs[regRepeat].Value() {
				m.errMsg = "Las contraseñas no coinciden"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) View() string {
	labels := []string{"Usuario   ", "Correo    ", "Contraseña", "Repetir   "}

	var b strings.Builder
	b.WriteString("Campo      │ Valor\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registrando...]\n")
	} else {
		b.WriteString("\n[Crear cuenta]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("REGISTRO", strings.TrimRight(b.String(), "\n"), "esc: volver │ tab: siguiente campo │ enter: crear cuenta")
}

func (m *registerModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, reg)
		if user.Username == "" {
			user.Username = reg.Username
		}
		return registerResult{user: user, err: err}
	}
}

func (m *registerModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focusOn(regUsername)
}

func (m *registerModel) focusOn(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
