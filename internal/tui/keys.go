package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Close key.Binding
	Help  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close, k.Help}}
}

var keys = keyMap{
	Close: key.NewBinding(
		key.WithKeys("q", "x", "esc", "ctrl+c"),
		key.WithHelp("q/x/esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}
