package components

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Backdrop is the screen background: hue 0.6 of a turn, fully saturated, 80% value.
func Backdrop() string {
	return colorful.Hsv(0.6*360, 1, 0.8).Hex()
}

// Luminance returns the relative luminance of a #rrggbb colour in [0, 1].
// Unparseable input counts as black.
func Luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
