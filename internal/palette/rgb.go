package palette

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB holds the three channel values on the 0-255 scale.
type RGB struct {
	R, G, B float64
}

// Random draws every channel uniformly from [0, 255].
func Random(r *rand.Rand) RGB {
	return RGB{
		R: r.Float64() * MaxValue,
		G: r.Float64() * MaxValue,
		B: r.Float64() * MaxValue,
	}
}

// Value returns the value held for ch.
func (c RGB) Value(ch Channel) float64 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	default:
		return 0
	}
}

// With returns a copy of c with ch set to v. The value is stored as given.
func (c RGB) With(ch Channel, v float64) RGB {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// Components returns the unit-range components used for rendering.
func (c RGB) Components() (r, g, b float64) {
	return c.R / MaxValue, c.G / MaxValue, c.B / MaxValue
}

// Colorful converts c into a go-colorful colour, clamped to the RGB gamut.
func (c RGB) Colorful() colorful.Color {
	r, g, b := c.Components()
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}

// Hex renders c as #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}
