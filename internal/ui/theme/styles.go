package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	theme Theme

	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	URL     lipgloss.Style
	Key     lipgloss.Style
	Hint    lipgloss.Style

	// Components
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style

	// KV table
	KVKey       lipgloss.Style
	KVValue     lipgloss.Style
	KVSeparator lipgloss.Style
	KVDisabled  lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		theme: t,

		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		Warning: lipgloss.NewStyle().Foreground(t.Yellow),
		URL:     lipgloss.NewStyle().Foreground(t.Blue).Underline(true),
		Key:     lipgloss.NewStyle().Foreground(t.Purple),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		TabActive: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Padding(0, 2),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
		Cursor: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Text),

		KVKey: lipgloss.NewStyle().
			Foreground(t.Purple),
		KVValue: lipgloss.NewStyle().
			Foreground(t.Text),
		KVSeparator: lipgloss.NewStyle().
			Foreground(t.Muted),
		KVDisabled: lipgloss.NewStyle().
			Foreground(t.Muted).
			Strikethrough(true),
	}
}

// MethodStyle returns a bold style colored for an HTTP method.
func (s Styles) MethodStyle(method string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.theme.MethodColor(method)).Bold(true)
}

// StatusStyle returns a bold style colored for an HTTP status code.
func (s Styles) StatusStyle(code int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.theme.StatusColor(code)).Bold(true)
}
