package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	Quit           key.Binding
	SendRequest    key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	NewPanel       key.Binding
	ClosePanel     key.Binding

	CycleFocus    key.Binding
	CycleFocusRev key.Binding
	ToggleHistory key.Binding

	PrevPanel key.Binding
	NextPanel key.Binding

	FocusURL       key.Binding
	Submit         key.Binding
	ExternalEditor key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SendRequest: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "send request"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new request panel"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close panel"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		CycleFocusRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		ToggleHistory: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle history"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev panel"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next panel"),
		),
		FocusURL: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit URL"),
		),
		Submit: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "send request"),
		),
		ExternalEditor: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit body in $EDITOR"),
		),
	}
}
