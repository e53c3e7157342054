package editor

import (
	"errors"
	"math"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
	"github.com/alexisbeaulieu97/colormix/internal/tui/components"
	apperrors "github.com/alexisbeaulieu97/colormix/pkg/errors"
)

const (
	// SliderStep is the granularity of slider moves.
	SliderStep = 1.0

	inputWidth = 5
)

// Options tunes how an editor renders.
type Options struct {
	SliderWidth int
	Accent      string
}

// Model edits one channel through a slider and a paired text field.
//
// The editor mirrors the owner's value. Slider moves rewrite the display
// string at once; typed text stays local until the edit ends and passes
// validation.
type Model struct {
	channel palette.Channel
	value   float64
	input   textinput.Model
	slider  components.Slider
	accent  string
	alert   string
	rev     uint64
}

// New creates an editor showing value, in sync.
func New(ch palette.Channel, value float64, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = inputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(palette.FormatValue(value))

	return Model{
		channel: ch,
		value:   value,
		input:   ti,
		slider:  components.NewSlider(opts.SliderWidth, palette.MaxValue, opts.Accent),
		accent:  opts.Accent,
	}
}

// Channel returns the channel this editor is bound to.
func (m Model) Channel() palette.Channel {
	return m.channel
}

// Value returns the mirrored channel value.
func (m Model) Value() float64 {
	return m.value
}

// Display returns the text field contents.
func (m Model) Display() string {
	return m.input.Value()
}

// Editing reports whether the text field holds focus.
func (m Model) Editing() bool {
	return m.input.Focused()
}

// Rev counts the value changes this editor has requested. Every
// ValueChangedMsg it emits carries the count at the time of the change.
func (m Model) Rev() uint64 {
	return m.rev
}

// Alert returns the pending advisory, if any.
func (m Model) Alert() (string, bool) {
	return m.alert, m.alert != ""
}

// DismissAlert clears the pending advisory.
func (m Model) DismissAlert() Model {
	m.alert = ""
	return m
}

// SetValue pushes a value from the owner and resyncs the display string.
func (m Model) SetValue(v float64) Model {
	m.value = v
	m.input.SetValue(palette.FormatValue(v))
	return m
}

// SlideTo moves the slider to v, clamped and snapped to SliderStep.
func (m Model) SlideTo(v float64) (Model, tea.Cmd) {
	v = math.Round(palette.Clamp(v)/SliderStep) * SliderStep
	m = m.SetValue(v)
	return m.changed(v)
}

// Slide moves the slider by delta.
func (m Model) Slide(delta float64) (Model, tea.Cmd) {
	return m.SlideTo(m.value + delta)
}

// Focus starts an editing session.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	m.input.CursorEnd()
	return m, cmd
}

// Blur ends the editing session and validates the text. Blurring an editor
// that is not editing does nothing.
func (m Model) Blur() (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	m.input.Blur()
	return m.commit()
}

func (m Model) commit() (Model, tea.Cmd) {
	v, err := palette.ParseValue(m.channel, m.input.Value())
	if err != nil {
		m = m.SetValue(0)
		m.alert = advisory(err)
		var cmd tea.Cmd
		m, cmd = m.changed(0)
		return m, tea.Batch(cmd, invalidInputCmd(m.channel, err))
	}

	m = m.SetValue(v)
	return m.changed(v)
}

func (m Model) changed(v float64) (Model, tea.Cmd) {
	m.rev++
	return m, valueChangedCmd(m.channel, v, m.rev)
}

func advisory(err error) string {
	var inputErr *apperrors.InvalidChannelInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message()
	}
	return err.Error()
}

// Update forwards input to the text field while editing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
