package response

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/theme"
)

type subTab int

const (
	tabBody subTab = iota
	tabHeaders
	tabCookies
	tabTiming
)

var subTabLabels = []string{"Body", "Headers", "Cookies", "Timing"}

// Model is the response pane: body, headers, cookies, and timing views plus
// the status line.
type Model struct {
	body    BodyModel
	headers HeadersModel
	cookies CookiesModel
	timing  TimingModel
	spinner spinner.Model

	styles  theme.Styles
	th      theme.Theme
	active  subTab
	focused bool
	loading bool
	record  *protocol.Response
	width   int
	height  int
}

// New creates a new response pane.
func New(t theme.Theme, s theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Purple)

	return Model{
		body:    NewBodyModel(s),
		headers: NewHeadersModel(s),
		cookies: NewCookiesModel(s),
		timing:  NewTimingModel(s),
		spinner: sp,
		styles:  s,
		th:      t,
	}
}

// SetRecord populates all views from a completed response.
func (m *Model) SetRecord(rec *protocol.Response) {
	m.loading = false
	m.record = rec
	if rec == nil {
		return
	}

	m.body.SetContent(rec.Body, rec.Headers["Content-Type"], rec.Failed())
	m.headers.SetHeaders(rec.Headers)
	m.cookies.SetCookies(rec.Cookies)
	m.timing.SetRecord(rec)
}

// Record returns the currently displayed response, or nil.
func (m Model) Record() *protocol.Response {
	return m.record
}

// SetLoading puts the pane into the waiting state. Loading shows the
// spinner but the previous record stays displayed behind it.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// SetFocused sets whether this pane has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	innerW := w - 2
	innerH := h - 4
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	m.body.SetSize(innerW, innerH)
	m.headers.SetSize(innerW, innerH)
	m.cookies.SetSize(innerW, innerH)
	m.timing.SetSize(innerW, innerH)
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.active = (m.active + 1) % subTab(len(subTabLabels))
			return m, nil
		case "shift+tab":
			if m.active == 0 {
				m.active = subTab(len(subTabLabels) - 1)
			} else {
				m.active--
			}
			return m, nil
		case "1":
			m.active = tabBody
			return m, nil
		case "2":
			m.active = tabHeaders
			return m, nil
		case "3":
			m.active = tabCookies
			return m, nil
		case "4":
			m.active = tabTiming
			return m, nil
		case "y":
			if m.record != nil && m.record.Body != "" {
				raw := m.record.Body
				return m, func() tea.Msg {
					if err := clipboard.WriteAll(raw); err != nil {
						return msgs.ToastMsg{Text: "Copy failed: " + err.Error(), IsError: true}
					}
					return msgs.ToastMsg{Text: "Body copied to clipboard"}
				}
			}
			return m, nil
		}
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case tabBody:
		m.body, cmd = m.body.Update(msg)
	case tabHeaders:
		m.headers, cmd = m.headers.Update(msg)
	case tabCookies:
		m.cookies, cmd = m.cookies.Update(msg)
	case tabTiming:
		m.timing, cmd = m.timing.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 0 {
		innerW = 0
	}
	innerH := m.height - 2
	if innerH < 0 {
		innerH = 0
	}

	var content string
	switch {
	case m.loading:
		content = m.renderLoading(innerW, innerH)
	case m.record == nil:
		content = m.renderEmpty(innerW, innerH)
	default:
		content = m.renderRecord(innerW, innerH)
	}

	return border.Width(innerW).Height(innerH).Render(content)
}

func (m Model) renderLoading(w, h int) string {
	msg := fmt.Sprintf("%s Sending request...", m.spinner.View())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderEmpty(w, h int) string {
	msg := m.styles.Muted.Render("Send a request to see the response")
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderRecord(w, h int) string {
	tabs := m.renderTabs(w)
	status := m.renderStatus(w)

	contentH := h - 2
	if contentH < 0 {
		contentH = 0
	}

	var body string
	switch m.active {
	case tabBody:
		body = m.body.View()
	case tabHeaders:
		body = m.headers.View()
	case tabCookies:
		body = m.cookies.View()
	case tabTiming:
		body = m.timing.View()
	}

	body = lipgloss.NewStyle().Width(w).Height(contentH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, status, body)
}

func (m Model) renderTabs(width int) string {
	var tabs []string
	for i, label := range subTabLabels {
		if subTab(i) == m.active {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(tabs, " "))
}

// renderStatus writes the summary line. Failed requests show the sentinel
// status text without a code.
func (m Model) renderStatus(width int) string {
	rec := m.record
	statusStyle := lipgloss.NewStyle().Foreground(m.th.StatusColor(rec.Status)).Bold(true)

	var left string
	if rec.Failed() {
		left = statusStyle.Render(rec.StatusText)
	} else {
		left = statusStyle.Render(fmt.Sprintf("%d %s", rec.Status, rec.StatusText))
	}

	meta := m.styles.Muted.Render(fmt.Sprintf("  %s · %s",
		humanize.IBytes(uint64(rec.Size)), rec.Time.Round(1e6)))

	return lipgloss.NewStyle().Width(width).Render(left + meta)
}
