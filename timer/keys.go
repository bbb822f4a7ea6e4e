package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start key.Binding
	stop  key.Binding
	esc   key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start a fast"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop fast"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
