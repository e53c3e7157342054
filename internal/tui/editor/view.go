package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
)

const (
	markerWidth = 2
	labelWidth  = 4
	fieldGap    = "  "
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Width(labelWidth).
			Align(lipgloss.Left)

	// The text input draws one cell past its width for the cursor.
	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ffffff")).
			Width(inputWidth+1+2).
			Align(lipgloss.Right).
			PaddingLeft(1).
			PaddingRight(1)

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)
)

// Part names a region of the row drawn by View.
type Part int

const (
	PartNone Part = iota
	PartSlider
	PartField
)

// View renders the editor row: value label, slider and text field. active
// marks the row the keyboard controls.
func (m Model) View(active bool) string {
	marker := "  "
	if active {
		marker = markerStyle.Render("› ")
	}

	label := labelStyle.Render(palette.FormatValue(m.value))

	field := inputStyle
	if m.input.Focused() {
		field = field.Background(lipgloss.Color(m.accent))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		marker,
		label,
		m.slider.View(m.value),
		fieldGap,
		field.Render(m.input.View()),
	)
}

// PartAt reports what View draws at column x of the row.
func (m Model) PartAt(x int) Part {
	barStart := markerWidth + labelWidth
	barEnd := barStart + m.slider.Width()
	fieldStart := barEnd + len(fieldGap)

	switch {
	case x >= barStart && x < barEnd:
		return PartSlider
	case x >= fieldStart && x < lipgloss.Width(m.View(false)):
		return PartField
	default:
		return PartNone
	}
}

// SliderValueAt maps column x of the row onto the slider's range. Columns
// before the bar give 0 and columns past it give 255.
func (m Model) SliderValueAt(x int) float64 {
	cells := m.slider.Width()
	if cells <= 1 {
		return palette.MinValue
	}
	offset := x - markerWidth - labelWidth
	return palette.Clamp(float64(offset) / float64(cells-1) * palette.MaxValue)
}
