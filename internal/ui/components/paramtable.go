package components

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column identifies which column of a row is focused.
type Column int

const (
	ColKey Column = iota
	ColValue
)

// ParamTable edits an ordered list of key-value rows with per-row enable
// toggles. Row order is preserved; it is meaningful for query strings.
type ParamTable struct {
	rows    []protocol.Param
	cursor  int
	column  Column
	editing bool
	input   textinput.Model
	width   int
	styles  theme.Styles
}

// NewParamTable creates an empty table with one blank enabled row.
func NewParamTable(styles theme.Styles) ParamTable {
	ti := textinput.New()
	ti.CharLimit = 256

	return ParamTable{
		rows:   []protocol.Param{{Enabled: true}},
		styles: styles,
		input:  ti,
		width:  60,
	}
}

// SetParams replaces all rows.
func (m *ParamTable) SetParams(rows []protocol.Param) {
	m.rows = rows
	if len(m.rows) == 0 {
		m.rows = []protocol.Param{{Enabled: true}}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// Params returns a copy of all rows in order.
func (m ParamTable) Params() []protocol.Param {
	out := make([]protocol.Param, len(m.rows))
	copy(out, m.rows)
	return out
}

// SetWidth sets the table width.
func (m *ParamTable) SetWidth(w int) {
	m.width = w
}

// Editing reports whether a cell is being edited.
func (m ParamTable) Editing() bool {
	return m.editing
}

func (m ParamTable) Init() tea.Cmd {
	return nil
}

func (m ParamTable) Update(msg tea.Msg) (ParamTable, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateNormal(msg)
}

func (m ParamTable) updateNormal(msg tea.Msg) (ParamTable, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "tab":
			m.column = m.otherColumn()
		case "enter":
			m.startEditing()
			return m, textinput.Blink
		case "a":
			m.rows = append(m.rows, protocol.Param{Enabled: true})
			m.cursor = len(m.rows) - 1
			m.column = ColKey
			m.startEditing()
			return m, textinput.Blink
		case "d":
			if len(m.rows) > 1 {
				m.rows = append(m.rows[:m.cursor], m.rows[m.cursor+1:]...)
				if m.cursor >= len(m.rows) {
					m.cursor = len(m.rows) - 1
				}
			} else {
				m.rows[0] = protocol.Param{Enabled: true}
			}
		case " ":
			m.rows[m.cursor].Enabled = !m.rows[m.cursor].Enabled
		}
	}
	return m, nil
}

func (m ParamTable) updateEditing(msg tea.Msg) (ParamTable, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			m.commitEdit()
			m.editing = false
			return m, nil
		case "tab":
			m.commitEdit()
			m.column = m.otherColumn()
			m.startEditing()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ParamTable) otherColumn() Column {
	if m.column == ColKey {
		return ColValue
	}
	return ColKey
}

func (m *ParamTable) startEditing() {
	m.editing = true
	if m.column == ColKey {
		m.input.SetValue(m.rows[m.cursor].Key)
	} else {
		m.input.SetValue(m.rows[m.cursor].Value)
	}
	m.input.Focus()
	m.input.CursorEnd()
}

func (m *ParamTable) commitEdit() {
	if m.cursor >= len(m.rows) {
		return
	}
	if m.column == ColKey {
		m.rows[m.cursor].Key = m.input.Value()
	} else {
		m.rows[m.cursor].Value = m.input.Value()
	}
	m.input.Blur()
}

func (m ParamTable) View() string {
	if len(m.rows) == 0 {
		return m.styles.Muted.Render("  No entries")
	}

	// "[x] " plus " | " around the key column
	available := m.width - 4 - 3
	if available < 10 {
		available = 10
	}
	keyW := available / 2
	valW := available - keyW

	m.input.Width = keyW - 1
	if m.column == ColValue {
		m.input.Width = valW - 1
	}

	var rows []string
	for i, row := range m.rows {
		isCursor := i == m.cursor

		prefix := "  "
		if isCursor {
			prefix = "> "
		}

		check := "[ ] "
		if row.Enabled {
			check = "[x] "
		}

		var keyStr, valStr string

		if isCursor && m.editing && m.column == ColKey {
			keyStr = m.input.View()
		} else {
			keyStr = truncate(row.Key, keyW)
			if keyStr == "" {
				keyStr = "key"
			}
		}

		if isCursor && m.editing && m.column == ColValue {
			valStr = m.input.View()
		} else {
			valStr = truncate(row.Value, valW)
			if valStr == "" {
				valStr = "value"
			}
		}

		sep := m.styles.KVSeparator.Render(" | ")

		switch {
		case !row.Enabled:
			check = m.styles.KVDisabled.Render(check)
			keyStr = m.styles.KVDisabled.Render(padRight(keyStr, keyW))
			valStr = m.styles.KVDisabled.Render(padRight(valStr, valW))
		case isCursor:
			check = m.styles.Normal.Render(check)
			keyStr = m.renderCell(keyStr, keyW, ColKey, m.styles.KVKey)
			valStr = m.renderCell(valStr, valW, ColValue, m.styles.KVValue)
		default:
			check = m.styles.Muted.Render(check)
			keyStr = m.renderPlain(row.Key, keyStr, keyW, m.styles.KVKey)
			valStr = m.renderPlain(row.Value, valStr, valW, m.styles.KVValue)
		}

		rows = append(rows, prefix+check+keyStr+sep+valStr)
	}

	return strings.Join(rows, "\n")
}

// renderCell styles a cursor-row cell. The cell under the cursor gets the
// highlight unless its text input is live.
func (m ParamTable) renderCell(s string, w int, col Column, base lipgloss.Style) string {
	if m.editing && m.column == col {
		return padRight(s, w)
	}
	if m.column == col {
		return m.styles.Cursor.Render(padRight(s, w))
	}
	return base.Render(padRight(s, w))
}

func (m ParamTable) renderPlain(raw, s string, w int, base lipgloss.Style) string {
	if raw == "" {
		return m.styles.Muted.Render(padRight(s, w))
	}
	return base.Render(padRight(s, w))
}

func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if len(s) > maxW {
		if maxW > 3 {
			return s[:maxW-3] + "..."
		}
		return s[:maxW]
	}
	return s
}

func padRight(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
