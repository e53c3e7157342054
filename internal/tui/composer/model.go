package composer

import (
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/colormix/internal/config"
	"github.com/alexisbeaulieu97/colormix/internal/logger"
	"github.com/alexisbeaulieu97/colormix/internal/palette"
	"github.com/alexisbeaulieu97/colormix/internal/tui/editor"
)

// FocusTarget names the text field holding keyboard focus, if any.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusRed
	FocusGreen
	FocusBlue
)

// FocusFor returns the focus target of a channel's text field.
func FocusFor(ch palette.Channel) FocusTarget {
	if !ch.Valid() {
		return FocusNone
	}
	return FocusTarget(int(ch) + 1)
}

// Channel returns the channel whose field is focused.
func (f FocusTarget) Channel() (palette.Channel, bool) {
	if f <= FocusNone || f > FocusBlue {
		return 0, false
	}
	return palette.Channel(int(f) - 1), true
}

func (f FocusTarget) String() string {
	if ch, ok := f.Channel(); ok {
		return ch.String()
	}
	return "none"
}

// Alert is a pending advisory raised by one of the editors.
type Alert struct {
	Channel palette.Channel
	Message string
}

// Options configures a new composer.
type Options struct {
	Config *config.Config
	// Rand seeds the random starting colour. Nil uses a fresh random source.
	Rand   *rand.Rand
	Logger *logger.Logger
}

// Model is the root screen: it owns the colour and the three channel editors.
type Model struct {
	color   palette.RGB
	editors [3]editor.Model
	// applied holds the last editor revision written into color, per channel.
	applied [3]uint64
	focus   FocusTarget
	cursor  palette.Channel

	dragging bool
	drag     palette.Channel

	keys keyMap
	help help.Model

	cfg *config.Config
	log *logger.Logger

	width  int
	height int
}

// NewModel creates the composer with a random starting colour, overridden by
// any values pinned in the configuration.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	start := cfg.Initial.Apply(palette.Random(rnd))

	var editors [3]editor.Model
	for _, ch := range palette.Channels() {
		editors[ch] = editor.New(ch, start.Value(ch), editor.Options{
			SliderWidth: cfg.Slider.Width,
			Accent:      cfg.Accents.For(ch),
		})
	}

	return Model{
		color:   start,
		editors: editors,
		focus:   FocusNone,
		cursor:  palette.Red,
		keys:    newKeyMap(),
		help:    help.New(),
		cfg:     cfg,
		log:     log.With("component", "composer"),
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	m.log.Info("composer started", map[string]any{"color": m.color.Hex()})
	return tea.SetWindowTitle("colormix")
}

// Color returns the authoritative colour.
func (m Model) Color() palette.RGB {
	return m.color
}

// Focus returns the focused text field.
func (m Model) Focus() FocusTarget {
	return m.focus
}

// Cursor returns the row the keyboard controls.
func (m Model) Cursor() palette.Channel {
	return m.cursor
}

// Editor returns the editor bound to ch.
func (m Model) Editor(ch palette.Channel) editor.Model {
	return m.editors[ch]
}

// Alerts returns pending advisories in channel order.
func (m Model) Alerts() []Alert {
	var alerts []Alert
	for _, ed := range m.editors {
		if msg, ok := ed.Alert(); ok {
			alerts = append(alerts, Alert{Channel: ed.Channel(), Message: msg})
		}
	}
	return alerts
}
