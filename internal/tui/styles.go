package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dueStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// stateStyle colours a plant row by how urgently it needs water.
func stateStyle(days int) lipgloss.Style {
	switch {
	case days < 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case days == 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case days <= 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	default:
		return lipgloss.NewStyle()
	}
}
