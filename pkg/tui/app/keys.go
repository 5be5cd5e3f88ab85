package app

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Events    key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Events:    key.NewBinding(key.WithKeys("`"), key.WithHelp("`", "events")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}
