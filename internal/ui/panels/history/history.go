package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	corehistory "github.com/baturalpk/restdeck/internal/core/history"
	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/theme"
)

// Model is the history column: deck submissions, newest first. Entries are
// append-only; reopening one builds a fresh editor panel.
type Model struct {
	entries  []corehistory.Entry // newest first
	filtered []int               // indices into entries matching the filter
	cursor   int                 // index into filtered

	width   int
	height  int
	focused bool

	filtering   bool
	filterInput textinput.Model

	theme  theme.Theme
	styles theme.Styles
}

// New creates a history column model.
func New(t theme.Theme, s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return Model{
		theme:       t,
		styles:      s,
		filterInput: ti,
	}
}

// SetEntries replaces the displayed entries. Input is store order (oldest
// first); the view reverses it so the latest submission is on top.
func (m *Model) SetEntries(entries []corehistory.Entry) {
	m.entries = make([]corehistory.Entry, len(entries))
	for i, e := range entries {
		m.entries[len(entries)-1-i] = e
	}
	m.applyFilter()
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// Len reports how many entries are displayed.
func (m Model) Len() int {
	return len(m.entries)
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Filtering reports whether the filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilter(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "/" {
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	}
	if len(m.filtered) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.filtered) - 1
	case "enter":
		e := m.entries[m.filtered[m.cursor]]
		return m, func() tea.Msg {
			return msgs.HistorySelectedMsg{ID: e.ID}
		}
	case "o":
		e := m.entries[m.filtered[m.cursor]]
		return m, func() tea.Msg {
			return msgs.OpenLinkMsg{URL: e.URL}
		}
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			if msg.String() == "esc" {
				m.filterInput.SetValue("")
				m.applyFilter()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

func (m *Model) applyFilter() {
	query := m.filterInput.Value()
	m.filtered = m.filtered[:0]

	if query == "" {
		for i := range m.entries {
			m.filtered = append(m.filtered, i)
		}
		return
	}

	targets := make([]string, len(m.entries))
	for i, e := range m.entries {
		targets[i] = e.Method + " " + e.URL
	}
	for _, match := range fuzzy.Find(query, targets) {
		m.filtered = append(m.filtered, match.Index)
	}
}

func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}

	var lines []string
	lines = append(lines, m.styles.Title.Render("History"))
	lines = append(lines, "")

	if len(m.filtered) == 0 {
		lines = append(lines, m.styles.Muted.Render("  No requests yet"))
	} else {
		for vi, idx := range m.filtered {
			lines = append(lines, m.renderEntry(m.entries[idx], vi == m.cursor, innerW))
		}
	}

	content := strings.Join(lines, "\n")
	if m.filtering {
		content = m.fitHeight(content, innerH-1) + "\n" + m.filterInput.View()
	} else {
		content = m.fitHeight(content, innerH)
	}

	return border.
		Width(innerW).
		Height(innerH).
		Render(content)
}

func (m Model) renderEntry(e corehistory.Entry, isCursor bool, maxWidth int) string {
	badge := m.styles.MethodStyle(e.Method).Render(padMethod(e.Method))

	status := fmt.Sprintf("%d", e.Status)
	if e.Failed() {
		status = "ERR"
	}
	statusStr := lipgloss.NewStyle().
		Foreground(m.theme.StatusColor(e.Status)).
		Render(status)

	urlW := maxWidth - 12
	if urlW < 8 {
		urlW = 8
	}
	url := e.URL
	if len(url) > urlW {
		url = url[:urlW-1] + "…"
	}

	line := badge + " " + statusStr + " " + m.styles.Normal.Render(url)

	if isCursor {
		plain := fmt.Sprintf("%s %s %s · %s",
			padMethod(e.Method), status, url, humanize.Time(e.Timestamp))
		return m.styles.Cursor.Width(maxWidth).Render(plain)
	}

	return line
}

// padMethod pads an HTTP method to 6 chars.
func padMethod(method string) string {
	if len(method) >= 6 {
		return method[:6]
	}
	return method + strings.Repeat(" ", 6-len(method))
}

// fitHeight truncates or pads content to the given height.
func (m Model) fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
