package tui

import "github.com/charmbracelet/bubbles/textinput"

// promptModel is a one-field overlay, used for values asked on the spot.
type promptModel struct {
	title string
	input textinput.Model
}

func newPromptModel(title, placeholder, value string) promptModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 32
	in.Width = 20
	in.SetValue(value)
	in.Focus()
	return promptModel{title: title, input: in}
}

func (m promptModel) View() string {
	content := m.title + "\n\n[" + m.input.View() + "]\n\nenter confirmar    esc cancelar"
	return overlayBoxStyle.Render(content)
}
