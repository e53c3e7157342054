package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
)

// ValueChangedMsg asks the owner to store a new value for a channel.
type ValueChangedMsg struct {
	Channel palette.Channel
	Value   float64
	// Rev orders requests from the same editor. Zero marks a request that did
	// not come from an editor.
	Rev uint64
}

// InvalidInputMsg reports that an edit was rejected and the channel reset to 0.
type InvalidInputMsg struct {
	Channel palette.Channel
	Err     error
}

func valueChangedCmd(ch palette.Channel, v float64, rev uint64) tea.Cmd {
	return func() tea.Msg {
		return ValueChangedMsg{Channel: ch, Value: v, Rev: rev}
	}
}

func invalidInputCmd(ch palette.Channel, err error) tea.Cmd {
	return func() tea.Msg {
		return InvalidInputMsg{Channel: ch, Err: err}
	}
}
