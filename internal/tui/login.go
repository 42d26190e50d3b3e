// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/service"
)

// loginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (username and password) and dispatches an async login command on form submission.
// A successful login moves to the dashboard.
type loginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// newLoginModel creates a [loginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func newLoginModel(ctx context.Context, auth service.ClientAuthService) *loginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "usuario"
	loginInput.CharLimit = 150
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "contraseña"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &loginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. The password never survives a visit to another page.
func (m *loginModel) Init() tea.Cmd {
	m.submitting = false
	m.inputs[1].SetValue("")
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResult]       clears submitting state; on success navigates to the dashboard.
//   - [registeredNotice]  prefills the username of a fresh account.
//   - esc                 navigates back to the home page.
//   - tab / shift+tab     moves focus between the inputs.
//   - enter               validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResult:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.inputs[1].SetValue("")
		return m, func() tea.Msg {
			return NavigateTo{Path: DashboardPath, Payload: notice{text: "Hola, " + msg.session.DisplayName}}
		}
	case registeredNotice:
		m.inputs[0].SetValue(msg.username)
		m.status = "Usuario creado correctamente, ya podés iniciar sesión"
		m.errMsg = ""
		m.focusOn(1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.status = ""
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

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Usuario y contraseña son obligatorios"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Usuario     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Contraseña  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Ingresando...]\n")
	} else {
		b.WriteString("\n[Ingresar]\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"), "esc: volver │ tab: siguiente campo │ enter: ingresar")
}

func (m *loginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		sess, err := auth.Login(ctx, username, password)
		return loginResult{session: sess, err: err}
	}
}

func (m *loginModel) focusOn(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
