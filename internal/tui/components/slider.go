package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// Slider renders a channel value as a horizontal bar.
type Slider struct {
	bar   progress.Model
	limit float64
}

// NewSlider creates a slider of the given width spanning [0, limit], tinted with accent.
func NewSlider(width int, limit float64, accent string) Slider {
	bar := progress.New(
		progress.WithSolidFill(accent),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.Empty = '─'
	bar.Full = '━'
	return Slider{bar: bar, limit: limit}
}

// Width returns the rendered width in cells.
func (s Slider) Width() int {
	return s.bar.Width
}

// Ratio maps value onto [0, 1].
func (s Slider) Ratio(value float64) float64 {
	if s.limit <= 0 || math.IsNaN(value) {
		return 0
	}
	return math.Max(0, math.Min(1, value/s.limit))
}

// View renders the bar for value.
func (s Slider) View(value float64) string {
	return s.bar.ViewAs(s.Ratio(value))
}
