package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the keyboard shortcuts of the timer view
type KeyMap struct {
	AcceptSuggestion key.Binding
	Dismiss          key.Binding
	EditMatter       key.Binding
	EditNotes        key.Binding
	ForceQuit        key.Binding
	Help             key.Binding
	Quit             key.Binding
	Reset            key.Binding
	Toggle           key.Binding
}

// NewKeyMap creates the default key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		AcceptSuggestion: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "use suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "dismiss notice"),
		),
		EditMatter: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "matter"),
		),
		EditNotes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notes"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "start/stop"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.EditMatter, k.EditNotes, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.EditMatter, k.EditNotes},
		{k.AcceptSuggestion, k.Dismiss},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
