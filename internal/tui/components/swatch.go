package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch paints a rounded rectangle filled with a single colour.
type Swatch struct {
	Width  int
	Height int
	Fill   string
	Border string
	// Caption is centred on the bottom row of the fill when set.
	Caption string
}

// View renders the swatch, border included.
func (s Swatch) View() string {
	width := max(s.Width, 1)
	height := max(s.Height, 1)

	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	if s.Caption != "" && lipgloss.Width(s.Caption) <= width {
		lines[height-1] = lipgloss.PlaceHorizontal(width, lipgloss.Center, s.Caption)
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(s.Fill)).
		Foreground(captionColor(s.Fill)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Border))

	return style.Render(strings.Join(lines, "\n"))
}

// captionColor picks black or white text for legibility on fill.
func captionColor(fill string) lipgloss.Color {
	if Luminance(fill) > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
