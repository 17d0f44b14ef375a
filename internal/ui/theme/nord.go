package theme

import "github.com/charmbracelet/lipgloss"

var Nord = Theme{
	Name:    "nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Red:    lipgloss.Color("#bf616a"),
	Orange: lipgloss.Color("#d08770"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Green:  lipgloss.Color("#a3be8c"),
	Teal:   lipgloss.Color("#8fbcbb"),
	Blue:   lipgloss.Color("#81a1c1"),
	Purple: lipgloss.Color("#b48ead"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
	StatusOK:        lipgloss.Color("#a3be8c"),
	StatusError:     lipgloss.Color("#bf616a"),
	StatusWarning:   lipgloss.Color("#ebcb8b"),
}
