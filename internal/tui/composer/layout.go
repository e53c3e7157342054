package composer

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
	"github.com/alexisbeaulieu97/colormix/internal/tui/components"
	"github.com/alexisbeaulieu97/colormix/internal/tui/editor"
)

// origin is the screen cell where a block starts.
type origin struct {
	x, y int
}

// sections returns the stacked blocks of the screen and the index of the
// first editor row among them.
func (m Model) sections() ([]string, int) {
	sections := []string{
		titleStyle.Render("colormix"),
		m.renderSwatch(),
		spacerStyle.Render(""),
	}

	first := len(sections)
	for _, ch := range palette.Channels() {
		sections = append(sections, m.editors[ch].View(m.focus == FocusNone && m.cursor == ch))
	}

	if m.focus != FocusNone {
		sections = append(sections, saveButtonStyle.Render("Save"))
	}

	for _, alert := range m.Alerts() {
		sections = append(sections, components.Alert{
			Title:   alertTitle,
			Message: fmt.Sprintf("%s: %s", alert.Channel, alert.Message),
			Hint:    "press x to dismiss",
		}.View())
	}

	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))
	return sections, first
}

// rowOrigins locates each editor row on screen, following how View stacks
// and centres the sections.
func (m Model) rowOrigins() [3]origin {
	sections, first := m.sections()
	contentWidth, contentHeight := lipgloss.Size(lipgloss.JoinVertical(lipgloss.Center, sections...))

	var left, top int
	if m.width > 0 && m.height > 0 {
		left = placeOffset(m.width - contentWidth)
		top = placeOffset(m.height - contentHeight)
	}

	var origins [3]origin
	y := top
	for i, section := range sections {
		if row := i - first; row >= 0 && row < len(origins) {
			origins[row] = origin{x: left + joinOffset(contentWidth-lipgloss.Width(section)), y: y}
		}
		y += lipgloss.Height(section)
	}
	return origins
}

// hitTest finds the editor row part under a screen cell, along with the
// cell's column within that row.
func (m Model) hitTest(x, y int) (palette.Channel, editor.Part, int) {
	for i, o := range m.rowOrigins() {
		if y == o.y {
			ch := palette.Channel(i)
			return ch, m.editors[ch].PartAt(x - o.x), x - o.x
		}
	}
	return 0, editor.PartNone, 0
}

// placeOffset is the leading gap lipgloss.Place leaves when centring.
func placeOffset(gap int) int {
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)/2))
}

// joinOffset is the leading gap lipgloss.JoinVertical leaves when centring.
func joinOffset(gap int) int {
	if gap < 1 {
		return 0
	}
	return int(math.Round(float64(gap) / 2))
}
