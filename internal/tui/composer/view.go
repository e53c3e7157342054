package composer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colormix/internal/tui/components"
)

const alertTitle = "Wrong Value"

// View renders the current model state.
func (m Model) View() string {
	sections, _ := m.sections()
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.background())))
}

func (m Model) renderSwatch() string {
	return components.Swatch{
		Width:   m.cfg.Swatch.Width,
		Height:  m.cfg.Swatch.Height,
		Fill:    m.color.Hex(),
		Border:  m.cfg.Swatch.Border,
		Caption: m.color.Hex(),
	}.View()
}

func (m Model) background() string {
	if m.cfg.Background != "" {
		return m.cfg.Background
	}
	return components.Backdrop()
}
