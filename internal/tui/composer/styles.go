package composer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	white = lipgloss.Color("#ffffff")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			MarginBottom(1)

	spacerStyle = lipgloss.NewStyle().
			Height(1)

	saveButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(white).
			Padding(0, 2).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			MarginTop(1)
)
