package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Forward  key.Binding
	Backward key.Binding
	Left     key.Binding
	Right    key.Binding
	Stop     key.Binding
	Water    key.Binding
	Weed     key.Binding
	Feed     key.Binding
	Clear    key.Binding
	Export   key.Binding
	Locale   key.Binding
	Theme    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Water, k.Weed, k.Feed, k.Locale, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right, k.Stop},
		{k.Water, k.Weed},
		{k.Feed, k.Clear, k.Export},
		{k.Locale, k.Theme, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Forward:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "forward")),
		Backward: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "backward")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Stop:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "stop")),
		Water:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "water")),
		Weed:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "weed")),
		Feed:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Locale:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
