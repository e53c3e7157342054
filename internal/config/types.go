package config

import (
	"github.com/alexisbeaulieu97/colormix/internal/palette"
)

// Defaults used when the configuration file omits a value.
const (
	DefaultSwatchWidth  = 37
	DefaultSwatchHeight = 7
	DefaultSwatchBorder = "#ffffff"
	DefaultSliderWidth  = 30
	DefaultRedAccent    = "#ff3b30"
	DefaultGreenAccent  = "#34c759"
	DefaultBlueAccent   = "#007aff"
)

// Config represents the optional colormix configuration document.
type Config struct {
	Swatch     Swatch  `yaml:"swatch,omitempty"`
	Slider     Slider  `yaml:"slider,omitempty"`
	Background string  `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
	Accents    Accents `yaml:"accents,omitempty"`
	Initial    Initial `yaml:"initial,omitempty"`
	Seed       *uint64 `yaml:"seed,omitempty"`
}

// Swatch sizes the preview rectangle in terminal cells.
type Swatch struct {
	Width  int    `yaml:"width,omitempty" validate:"omitempty,min=4,max=200"`
	Height int    `yaml:"height,omitempty" validate:"omitempty,min=1,max=60"`
	Border string `yaml:"border,omitempty" validate:"omitempty,hexcolor"`
}

// Slider sizes the channel sliders.
type Slider struct {
	Width int `yaml:"width,omitempty" validate:"omitempty,min=8,max=120"`
}

// Accents tints each channel's slider.
type Accents struct {
	Red   string `yaml:"red,omitempty" validate:"omitempty,hexcolor"`
	Green string `yaml:"green,omitempty" validate:"omitempty,hexcolor"`
	Blue  string `yaml:"blue,omitempty" validate:"omitempty,hexcolor"`
}

// For returns the accent configured for ch.
func (a Accents) For(ch palette.Channel) string {
	switch ch {
	case palette.Red:
		return a.Red
	case palette.Green:
		return a.Green
	case palette.Blue:
		return a.Blue
	default:
		return ""
	}
}

// Initial pins starting channel values. Unset channels start random.
type Initial struct {
	Red   *float64 `yaml:"red,omitempty" validate:"omitempty,channel"`
	Green *float64 `yaml:"green,omitempty" validate:"omitempty,channel"`
	Blue  *float64 `yaml:"blue,omitempty" validate:"omitempty,channel"`
}

// Apply overlays the pinned values onto start.
func (i Initial) Apply(start palette.RGB) palette.RGB {
	if i.Red != nil {
		start = start.With(palette.Red, *i.Red)
	}
	if i.Green != nil {
		start = start.With(palette.Green, *i.Green)
	}
	if i.Blue != nil {
		start = start.With(palette.Blue, *i.Blue)
	}
	return start
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Swatch.Width == 0 {
		c.Swatch.Width = DefaultSwatchWidth
	}
	if c.Swatch.Height == 0 {
		c.Swatch.Height = DefaultSwatchHeight
	}
	if c.Swatch.Border == "" {
		c.Swatch.Border = DefaultSwatchBorder
	}
	if c.Slider.Width == 0 {
		c.Slider.Width = DefaultSliderWidth
	}
	if c.Accents.Red == "" {
		c.Accents.Red = DefaultRedAccent
	}
	if c.Accents.Green == "" {
		c.Accents.Green = DefaultGreenAccent
	}
	if c.Accents.Blue == "" {
		c.Accents.Blue = DefaultBlueAccent
	}
}
