package app

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Mode     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Settings key.Binding
	Sheet    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "hour/minute"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "earlier"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "later"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "bed/wake"),
		),
		Faster: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "less time to fall asleep"),
		),
		Slower: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more time to fall asleep"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle length"),
		),
		Sheet: key.NewBinding(
			key.WithKeys("space", " "),
			key.WithHelp("space", "results"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Sheet, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Up, k.Down},
		{k.Mode, k.Faster, k.Slower, k.Settings},
		{k.Sheet, k.Help, k.Quit},
	}
}
