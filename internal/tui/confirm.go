package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := m.question + "\n\n"
	content += "y sí    n no"
	return overlayBoxStyle.Render(content)
}
