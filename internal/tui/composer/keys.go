package composer

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the composer reacts to.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CoarseLeft  key.Binding
	CoarseRight key.Binding
	Min         key.Binding
	Max         key.Binding
	Edit        key.Binding
	Submit      key.Binding
	Save        key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Dismiss     key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-1")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+1")),
		CoarseLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-10")),
		CoarseRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+10")),
		Min:         key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "min")),
		Max:         key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "max")),
		Edit:        key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "type value")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Save:        key.NewBinding(key.WithKeys("esc", "ctrl+s"), key.WithHelp("esc", "save")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Dismiss:     key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss alert")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	km.setEditing(false)
	km.setAlerting(false)
	return km
}

// setEditing swaps between slider bindings and text field bindings.
func (k *keyMap) setEditing(editing bool) {
	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Left, &k.Right, &k.CoarseLeft, &k.CoarseRight,
		&k.Min, &k.Max, &k.Edit, &k.Help, &k.Quit,
	} {
		b.SetEnabled(!editing)
	}
	k.Submit.SetEnabled(editing)
	k.Save.SetEnabled(editing)
	k.PrevField.SetEnabled(editing)
}

func (k *keyMap) setAlerting(alerting bool) {
	k.Dismiss.SetEnabled(alerting)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Submit, k.Save, k.NextField, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextField, k.PrevField},
		{k.Left, k.Right, k.CoarseLeft, k.CoarseRight, k.Min, k.Max},
		{k.Edit, k.Submit, k.Save, k.Dismiss},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
