package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the session actions and their bindings. The engine never
// sees keys, only the actions the Update loop maps them to.
type keyMap struct {
	Reveal  key.Binding
	Hit     key.Binding
	Miss    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "reveal"),
		),
		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Miss: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "miss"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Hit, k.Miss, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
