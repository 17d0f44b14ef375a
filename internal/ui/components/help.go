package components

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"Ctrl+C", "Quit application"},
			{"Ctrl+K", "Open command palette"},
			{"?", "Toggle this help"},
			{"Tab", "Cycle focus forward"},
			{"Shift+Tab", "Cycle focus backward"},
			{"Ctrl+Enter", "Send request"},
			{"Ctrl+N", "New request panel"},
			{"Ctrl+W", "Close current panel"},
			{"[ / ]", "Previous / next panel"},
			{"E", "Edit body in $EDITOR"},
		},
	},
	{
		Title: "History",
		Bindings: []helpBinding{
			{"b", "Toggle history column"},
			{"j / k", "Move cursor down / up"},
			{"Enter", "Reopen entry in a new panel"},
			{"o", "Open entry URL in browser"},
			{"/", "Filter history"},
		},
	},
	{
		Title: "Editor",
		Bindings: []helpBinding{
			{"m / M", "Cycle HTTP method"},
			{"1-5", "Switch sections (Query, Headers, Auth, Body, Options)"},
			{"a / d", "Add / delete row"},
			{"Space", "Toggle row on / off"},
			{"v", "Toggle certificate verification (Options)"},
		},
	},
	{
		Title: "Response",
		Bindings: []helpBinding{
			{"j / k", "Scroll down / up"},
			{"1-4", "Switch views (Body, Headers, Cookies, Timing)"},
			{"y", "Copy body to clipboard"},
		},
	},
}

// Help is an overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	theme    theme.Theme
	styles   theme.Styles
	width    int
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(t theme.Theme, s theme.Styles) Help {
	return Help{
		theme:  t,
		styles: s,
	}
}

// SetSize sets the terminal dimensions.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.buildViewport()
	}
}

func (m *Help) buildViewport() {
	boxWidth := 70
	contentWidth := boxWidth - 6

	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.Purple).
		Bold(true).
		Width(16).
		Align(lipgloss.Right)

	descStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text)

	sectionStyle := lipgloss.NewStyle().
		Foreground(m.theme.Blue).
		Bold(true).
		MarginTop(1)

	sepStyle := lipgloss.NewStyle().
		Foreground(m.theme.Muted)

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))

		for _, b := range section.Bindings {
			lines = append(lines, keyStyle.Render(b.Key)+sepStyle.Render(" │ ")+descStyle.Render(b.Desc))
		}
	}

	vpHeight := m.height - 8
	if vpHeight < 10 {
		vpHeight = 10
	}

	m.viewport = viewport.New(contentWidth, vpHeight)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			m.Visible = false
			return m, nil
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	if !m.ready {
		m.buildViewport()
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(64).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	return lipgloss.NewStyle().
		Width(70).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.viewport.View())
}
