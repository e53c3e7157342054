package composer

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colormix/internal/config"
	"github.com/alexisbeaulieu97/colormix/internal/palette"
	"github.com/alexisbeaulieu97/colormix/internal/tui/editor"
)

func newTestModel(t *testing.T, r, g, b float64) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Initial = config.Initial{Red: &r, Green: &g, Blue: &b}
	return NewModel(Options{Config: cfg, Rand: rand.New(rand.NewPCG(1, 1))})
}

// send delivers msg and then feeds back every editor request it produces, the
// way the Bubble Tea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return drain(t, next, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case editor.ValueChangedMsg, editor.InvalidInputMsg:
			m = send(t, m, msg)
		}
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// typeInto replaces the focused field's text.
func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	m = send(t, m, keyPress("ctrl+u"))
	if text != "" {
		m = send(t, m, keyPress(text))
	}
	return m
}

func leftClick() tea.MouseMsg {
	return pressAt(1, 1)
}

func pressAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func dragAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func releaseAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// sized returns m laid out in a window large enough for the whole screen.
func sized(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
}

// screenLine returns row y of the rendered screen, one rune per cell.
func screenLine(t *testing.T, m Model, y int) []rune {
	t.Helper()
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Less(t, y, len(lines))
	return []rune(lines[y])
}

// cellsOf lists the screen columns of ch's row that hold part.
func cellsOf(m Model, ch palette.Channel, part editor.Part) (int, []int) {
	o := m.rowOrigins()[ch]
	var xs []int
	for x := 0; x < m.width; x++ {
		if m.Editor(ch).PartAt(x-o.x) == part {
			xs = append(xs, x)
		}
	}
	return o.y, xs
}
