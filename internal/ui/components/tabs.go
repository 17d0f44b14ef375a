package components

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelTab describes one panel in the tab bar.
type PanelTab struct {
	Name    string
	Method  string
	Pinned  bool // deck panel, cannot be closed
	Running bool
}

// TabBar is the horizontal bar of open panels.
type TabBar struct {
	tabs   []PanelTab
	active int
	width  int
	theme  theme.Theme
	styles theme.Styles
}

// NewTabBar creates a new tab bar.
func NewTabBar(t theme.Theme, s theme.Styles) TabBar {
	return TabBar{
		theme:  t,
		styles: s,
	}
}

// SetTabs sets the tab items.
func (m *TabBar) SetTabs(tabs []PanelTab) {
	m.tabs = tabs
	if m.active >= len(tabs) && len(tabs) > 0 {
		m.active = len(tabs) - 1
	}
}

// SetActive sets the active tab index.
func (m *TabBar) SetActive(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.active = index
	}
}

// SetWidth sets the available width.
func (m *TabBar) SetWidth(w int) {
	m.width = w
}

func (m TabBar) Init() tea.Cmd {
	return nil
}

func (m TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("["))):
			return m, func() tea.Msg { return msgs.PrevPanelMsg{} }
		case key.Matches(msg, key.NewBinding(key.WithKeys("]"))):
			return m, func() tea.Msg { return msgs.NextPanelMsg{} }
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			return m, m.click(msg.X)
		}
	}
	return m, nil
}

// click maps an x coordinate on the bar row to a tab switch, or to a new
// panel when the plus button is hit.
func (m TabBar) click(x int) tea.Cmd {
	pos := 0
	for i, label := range m.renderLabels() {
		next := pos + lipgloss.Width(label)
		if x >= pos && x < next {
			index := i
			return func() tea.Msg { return msgs.SwitchPanelMsg{Index: index} }
		}
		pos = next + 1 // separator column
	}
	if x >= pos && x < pos+lipgloss.Width(m.plusButton()) {
		return func() tea.Msg { return msgs.StartNewRequestMsg{} }
	}
	return nil
}

func (m TabBar) plusButton() string {
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" [+]")
}

// renderLabels renders each tab's styled label. View and click hit-testing
// share this so the ranges stay in step with what is drawn.
func (m TabBar) renderLabels() []string {
	if len(m.tabs) == 0 {
		return nil
	}

	reserved := lipgloss.Width(m.plusButton()) + len(m.tabs)
	available := m.width - reserved
	if available < 0 {
		available = 0
	}

	maxTabWidth := 30
	if perTab := available / len(m.tabs); perTab < maxTabWidth {
		maxTabWidth = perTab
	}
	if maxTabWidth < 8 {
		maxTabWidth = 8
	}

	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		method := tab.Method
		if len(method) > 3 {
			method = method[:3]
		}
		for len(method) < 3 {
			method += " "
		}
		badge := lipgloss.NewStyle().
			Foreground(m.theme.MethodColor(tab.Method)).
			Bold(true).
			Render(method)

		marker := ""
		if tab.Pinned {
			marker = "⊙ "
		}
		if tab.Running {
			marker += "● "
		}

		nameWidth := maxTabWidth - 4 - len(marker)
		if nameWidth < 1 {
			nameWidth = 1
		}
		name := tab.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}

		label := marker + badge + " " + name

		if i == m.active {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(label))
		}
	}
	return parts
}

// View renders the tab bar. The pinned deck tab carries a pin marker and a
// running tab a spinner dot.
func (m TabBar) View() string {
	parts := m.renderLabels()
	if len(parts) == 0 {
		return ""
	}

	sep := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("│")
	result := strings.Join(parts, sep) + sep + m.plusButton()

	if w := lipgloss.Width(result); w < m.width {
		result += strings.Repeat(" ", m.width-w)
	}

	return result
}
