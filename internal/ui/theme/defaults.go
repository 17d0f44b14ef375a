package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// RestdeckDark is the default theme.
var RestdeckDark = Theme{
	Name:    "restdeck-dark",
	Base:    lipgloss.Color("#1a1b26"),
	Surface: lipgloss.Color("#2f334d"),
	Overlay: lipgloss.Color("#3b4261"),

	Text:    lipgloss.Color("#c8d3f5"),
	Subtext: lipgloss.Color("#a9b8e8"),
	Muted:   lipgloss.Color("#545c7e"),

	Red:    lipgloss.Color("#ff757f"),
	Orange: lipgloss.Color("#ff966c"),
	Yellow: lipgloss.Color("#ffc777"),
	Green:  lipgloss.Color("#c3e88d"),
	Teal:   lipgloss.Color("#4fd6be"),
	Blue:   lipgloss.Color("#82aaff"),
	Purple: lipgloss.Color("#c099ff"),

	BorderFocused:   lipgloss.Color("#82aaff"),
	BorderUnfocused: lipgloss.Color("#545c7e"),
	StatusOK:        lipgloss.Color("#c3e88d"),
	StatusError:     lipgloss.Color("#ff757f"),
	StatusWarning:   lipgloss.Color("#ffc777"),
}

// Default returns the default theme.
func Default() Theme {
	return RestdeckDark
}

// Resolve looks up a theme by name: catalog, then custom theme files, then
// the default.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	home, err := os.UserHomeDir()
	if err == nil {
		customDir := filepath.Join(home, ".config", "restdeck", "themes")
		customs := LoadCustomThemes(customDir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return RestdeckDark
}
