package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is the full-width bottom bar: response summary on the left, the
// active panel's state in the center, key hints on the right.
type StatusBar struct {
	statusCode  int
	statusText  string
	duration    time.Duration
	size        int64
	contentType string
	state       msgs.PanelState
	message     string
	width       int
	theme       theme.Theme
	styles      theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		state:  msgs.PanelIdle,
	}
}

// SetSummary sets the last response info shown on the left.
func (m *StatusBar) SetSummary(code int, statusText string, duration time.Duration, size int64, contentType string) {
	m.statusCode = code
	m.statusText = statusText
	m.duration = duration
	m.size = size
	m.contentType = contentType
}

// SetState sets the active panel's request state.
func (m *StatusBar) SetState(state msgs.PanelState) {
	m.state = state
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// ClearAfter returns a command that clears the message after d.
func (m StatusBar) ClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m StatusBar) Init() tea.Cmd {
	return nil
}

func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	onBar := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(m.theme.Surface)
	}

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, onBar(m.theme.Text).Render(m.message))
	} else if m.statusText != "" {
		code := onBar(m.theme.StatusColor(m.statusCode)).Bold(true)
		if m.statusCode > 0 {
			leftParts = append(leftParts, code.Render(fmt.Sprintf("%d %s", m.statusCode, m.statusText)))
		} else {
			leftParts = append(leftParts, code.Render(m.statusText))
		}
		leftParts = append(leftParts, onBar(m.theme.Subtext).Render(formatDuration(m.duration)))
		leftParts = append(leftParts, onBar(m.theme.Subtext).Render(humanize.IBytes(uint64(m.size))))
		if m.contentType != "" {
			leftParts = append(leftParts, onBar(m.theme.Muted).Render(m.contentType))
		}
	}
	left := strings.Join(leftParts, " │ ")

	stateColor := m.theme.Muted
	if m.state == msgs.PanelExecuting {
		stateColor = m.theme.Yellow
	}
	center := onBar(stateColor).Bold(true).Render("[" + m.state.String() + "]")

	hint := onBar(m.theme.Muted).Render("?:help  Ctrl+K:command")

	leftW := lipgloss.Width(left)
	centerW := lipgloss.Width(center)
	rightW := lipgloss.Width(hint)

	total := leftW + centerW + rightW
	if total >= m.width {
		return barStyle.Render(" " + left + " " + center + " " + hint)
	}

	remaining := m.width - total - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + center +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
