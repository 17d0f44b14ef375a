package response

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/theme"
)

// TimingModel displays the request's phase breakdown and totals.
type TimingModel struct {
	styles    theme.Styles
	hasRecord bool
	content   string
}

// NewTimingModel creates a new timing display.
func NewTimingModel(s theme.Styles) TimingModel {
	return TimingModel{styles: s}
}

// SetRecord populates the display from a completed response.
func (m *TimingModel) SetRecord(rec *protocol.Response) {
	if rec == nil {
		m.hasRecord = false
		return
	}
	m.hasRecord = true

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n",
			m.styles.Key.Width(14).Render(label),
			m.styles.Normal.Render(value))
	}

	row("Total", fmtPhase(rec.Time))
	row("Size", humanize.IBytes(uint64(rec.Size)))

	if t := rec.Timing; t != nil {
		b.WriteString("\n")
		row("DNS Lookup", fmtPhase(t.DNSLookup))
		row("TCP Connect", fmtPhase(t.TCPConnect))
		row("TLS Handshake", fmtPhase(t.TLSHandshake))
		row("First Byte", fmtPhase(t.TTFB))
		row("Transfer", fmtPhase(t.Transfer))
	}

	m.content = strings.TrimRight(b.String(), "\n")
}

// SetSize is a no-op; the timing view is short and static.
func (m *TimingModel) SetSize(_, _ int) {}

func (m TimingModel) Init() tea.Cmd {
	return nil
}

func (m TimingModel) Update(_ tea.Msg) (TimingModel, tea.Cmd) {
	return m, nil
}

func (m TimingModel) View() string {
	if !m.hasRecord {
		return m.styles.Muted.Render("No timing data")
	}
	return m.content
}

func fmtPhase(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
