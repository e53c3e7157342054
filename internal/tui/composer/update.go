package composer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
	"github.com/alexisbeaulieu97/colormix/internal/tui/editor"
)

const coarseStep = 10 * editor.SliderStep

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case editor.ValueChangedMsg:
		if !msg.Channel.Valid() {
			return m, nil
		}
		if msg.Rev != 0 {
			if msg.Rev <= m.applied[msg.Channel] {
				// Superseded by a later move that was already adopted.
				return m, nil
			}
			m.applied[msg.Channel] = msg.Rev
		}
		m.color = m.color.With(msg.Channel, msg.Value)
		ed := m.editors[msg.Channel]
		if !ed.Editing() && ed.Value() != msg.Value {
			m.editors[msg.Channel] = ed.SetValue(msg.Value)
		}
		return m, nil

	case editor.InvalidInputMsg:
		// The editor already holds the advisory; only the key hints change.
		m.keys.setAlerting(len(m.Alerts()) > 0)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.focus != FocusNone {
		return m.handleEditingKeys(msg)
	}
	return m.handleSliderKeys(msg)
}

// handleEditingKeys handles keys while a text field is focused
func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Save):
		return m.setFocus(FocusNone)

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus(m.focus%FocusBlue + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus+1)%FocusBlue + 1)
	}

	ch, _ := m.focus.Channel()
	var cmd tea.Cmd
	m.editors[ch], cmd = m.editors[ch].Update(msg)
	return m, cmd
}

// handleSliderKeys handles keys while no text field is focused
func (m Model) handleSliderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + palette.Blue) % (palette.Blue + 1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % (palette.Blue + 1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.slide(-editor.SliderStep)

	case key.Matches(msg, m.keys.Right):
		return m.slide(editor.SliderStep)

	case key.Matches(msg, m.keys.CoarseLeft):
		return m.slide(-coarseStep)

	case key.Matches(msg, m.keys.CoarseRight):
		return m.slide(coarseStep)

	case key.Matches(msg, m.keys.Min):
		return m.slideTo(palette.MinValue)

	case key.Matches(msg, m.keys.Max):
		return m.slideTo(palette.MaxValue)

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.NextField):
		return m.setFocus(FocusFor(m.cursor))

	case key.Matches(msg, m.keys.Dismiss):
		return m.dismissAlert(), nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleMouse handles clicks and drags. A press on a slider bar moves it and
// starts a drag, a press on a text field focuses it, and a press anywhere
// else dismisses focus.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if !m.dragging || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.dragTo(msg.X)

	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return m, nil
	}

	ch, part, col := m.hitTest(msg.X, msg.Y)
	switch part {
	case editor.PartField:
		return m.setFocus(FocusFor(ch))

	case editor.PartSlider:
		// Read the value off the bar before the layout shifts.
		v := m.editors[ch].SliderValueAt(col)
		var blurCmd, slideCmd tea.Cmd
		m, blurCmd = m.setFocus(FocusNone)
		m.cursor = ch
		m.dragging = true
		m.drag = ch
		m, slideCmd = m.slideTo(v)
		return m, tea.Batch(blurCmd, slideCmd)

	default:
		return m.setFocus(FocusNone)
	}
}

func (m Model) dragTo(x int) (Model, tea.Cmd) {
	ed := m.editors[m.drag]
	var cmd tea.Cmd
	m.editors[m.drag], cmd = ed.SlideTo(ed.SliderValueAt(x - m.rowOrigins()[m.drag].x))
	return m.adopt(m.drag), cmd
}

func (m Model) slide(delta float64) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editors[m.cursor], cmd = m.editors[m.cursor].Slide(delta)
	return m.adopt(m.cursor), cmd
}

func (m Model) slideTo(v float64) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editors[m.cursor], cmd = m.editors[m.cursor].SlideTo(v)
	return m.adopt(m.cursor), cmd
}

// adopt writes a change the editor just requested into the colour, so that
// its ValueChangedMsg, whenever it arrives, is already stale.
func (m Model) adopt(ch palette.Channel) Model {
	ed := m.editors[ch]
	if ed.Rev() > m.applied[ch] {
		m.color = m.color.With(ch, ed.Value())
		m.applied[ch] = ed.Rev()
	}
	return m
}

// setFocus moves keyboard focus. The field losing focus ends its edit, which
// validates and commits whatever was typed.
func (m Model) setFocus(target FocusTarget) (Model, tea.Cmd) {
	if target == m.focus {
		return m, nil
	}

	var cmds []tea.Cmd
	if ch, ok := m.focus.Channel(); ok {
		var cmd tea.Cmd
		m.editors[ch], cmd = m.editors[ch].Blur()
		m = m.adopt(ch)
		cmds = append(cmds, cmd)
	}

	if ch, ok := target.Channel(); ok {
		var cmd tea.Cmd
		m.editors[ch], cmd = m.editors[ch].Focus()
		m.cursor = ch
		cmds = append(cmds, cmd)
	}

	m.log.Debug("focus changed", map[string]any{"from": m.focus.String(), "to": target.String()})
	m.focus = target
	m.keys.setEditing(target != FocusNone)
	m.keys.setAlerting(len(m.Alerts()) > 0)

	return m, tea.Batch(cmds...)
}

// dismissAlert clears the active row's advisory, or the first pending one
// when the active row has none.
func (m Model) dismissAlert() Model {
	target := m.cursor
	if _, ok := m.editors[target].Alert(); !ok {
		alerts := m.Alerts()
		if len(alerts) == 0 {
			return m
		}
		target = alerts[0].Channel
	}
	m.editors[target] = m.editors[target].DismissAlert()
	m.keys.setAlerting(len(m.Alerts()) > 0)
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.log.Info("composer closed", map[string]any{"color": m.color.Hex()})
	return m, tea.Quit
}
