package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	alertBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2)

	alertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	alertHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// Alert renders an advisory box with a title, a message and a dismiss hint.
type Alert struct {
	Title   string
	Message string
	Hint    string
}

// View renders the alert.
func (a Alert) View() string {
	parts := []string{alertTitleStyle.Render(a.Title), a.Message}
	if a.Hint != "" {
		parts = append(parts, alertHintStyle.Render(a.Hint))
	}
	return alertBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}
