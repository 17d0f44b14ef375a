package theme

import "github.com/charmbracelet/lipgloss"

var Dracula = Theme{
	Name:    "dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d6d6d6"),
	Muted:   lipgloss.Color("#6272a4"),

	Red:    lipgloss.Color("#ff5555"),
	Orange: lipgloss.Color("#ffb86c"),
	Yellow: lipgloss.Color("#f1fa8c"),
	Green:  lipgloss.Color("#50fa7b"),
	Teal:   lipgloss.Color("#8be9fd"),
	Blue:   lipgloss.Color("#6272a4"),
	Purple: lipgloss.Color("#bd93f9"),

	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
	StatusOK:        lipgloss.Color("#50fa7b"),
	StatusError:     lipgloss.Color("#ff5555"),
	StatusWarning:   lipgloss.Color("#f1fa8c"),
}
