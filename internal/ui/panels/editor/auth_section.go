package editor

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var authTypes = []string{"none", "basic", "bearer"}

// AuthSection edits the request's authentication settings.
type AuthSection struct {
	authType  string
	typeIndex int
	cursor    int // 0=type selector, 1+=fields
	editing   bool

	username textinput.Model
	password textinput.Model
	token    textinput.Model

	width  int
	styles theme.Styles
}

// NewAuthSection creates an auth section with type "none".
func NewAuthSection(styles theme.Styles) AuthSection {
	mkInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 512
		ti.Width = 40
		return ti
	}

	return AuthSection{
		authType: "none",
		username: mkInput("Username"),
		password: mkInput("Password"),
		token:    mkInput("Bearer token"),
		styles:   styles,
	}
}

// SetSize updates the section width.
func (m *AuthSection) SetSize(w int) {
	m.width = w
	inputW := w - 16
	if inputW < 10 {
		inputW = 10
	}
	m.username.Width = inputW
	m.password.Width = inputW
	m.token.Width = inputW
}

// Editing reports whether a field is being edited.
func (m AuthSection) Editing() bool {
	return m.editing
}

// Build returns the auth settings, or nil for type "none".
func (m AuthSection) Build() *protocol.AuthConfig {
	switch m.authType {
	case "basic":
		return &protocol.AuthConfig{
			Type:     "basic",
			Username: m.username.Value(),
			Password: m.password.Value(),
		}
	case "bearer":
		return &protocol.AuthConfig{
			Type:  "bearer",
			Token: m.token.Value(),
		}
	default:
		return nil
	}
}

// Load populates the section from existing settings.
func (m *AuthSection) Load(auth *protocol.AuthConfig) {
	if auth == nil || auth.Type == "" || auth.Type == "none" {
		m.authType = "none"
		m.typeIndex = 0
		return
	}
	m.authType = auth.Type
	for i, t := range authTypes {
		if t == auth.Type {
			m.typeIndex = i
			break
		}
	}
	m.username.SetValue(auth.Username)
	m.password.SetValue(auth.Password)
	m.token.SetValue(auth.Token)
}

func (m AuthSection) Update(msg tea.Msg) (AuthSection, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateNormal(msg)
}

func (m AuthSection) updateNormal(msg tea.Msg) (AuthSection, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < m.maxCursor() {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ":
			if m.cursor == 0 {
				m.cycleType(1)
			} else {
				m.startEditing()
				return m, textinput.Blink
			}
		case "h", "left":
			if m.cursor == 0 {
				m.cycleType(-1)
			}
		case "l", "right":
			if m.cursor == 0 {
				m.cycleType(1)
			}
		}
	}
	return m, nil
}

func (m AuthSection) updateEditing(msg tea.Msg) (AuthSection, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			m.blurAll()
			m.editing = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.authType {
	case "basic":
		if m.cursor == 1 {
			m.username, cmd = m.username.Update(msg)
		} else if m.cursor == 2 {
			m.password, cmd = m.password.Update(msg)
		}
	case "bearer":
		if m.cursor == 1 {
			m.token, cmd = m.token.Update(msg)
		}
	}
	return m, cmd
}

func (m *AuthSection) cycleType(dir int) {
	n := len(authTypes)
	m.typeIndex = (m.typeIndex + dir + n) % n
	m.authType = authTypes[m.typeIndex]
	m.cursor = 0
}

func (m *AuthSection) startEditing() {
	m.editing = true
	switch m.authType {
	case "basic":
		if m.cursor == 1 {
			m.username.Focus()
			m.username.CursorEnd()
		} else if m.cursor == 2 {
			m.password.Focus()
			m.password.CursorEnd()
		}
	case "bearer":
		if m.cursor == 1 {
			m.token.Focus()
			m.token.CursorEnd()
		}
	}
}

func (m *AuthSection) blurAll() {
	m.username.Blur()
	m.password.Blur()
	m.token.Blur()
}

func (m AuthSection) maxCursor() int {
	switch m.authType {
	case "basic":
		return 2
	case "bearer":
		return 1
	default:
		return 0
	}
}

func (m AuthSection) View() string {
	var lines []string

	typeLabel := "  Type: "
	if m.cursor == 0 {
		typeLabel = "> Type: "
	}

	var typeParts []string
	for i, t := range authTypes {
		if i == m.typeIndex {
			typeParts = append(typeParts, m.styles.TabActive.Render(t))
		} else {
			typeParts = append(typeParts, m.styles.TabInactive.Render(t))
		}
	}
	lines = append(lines, typeLabel+strings.Join(typeParts, " "))

	switch m.authType {
	case "none":
		lines = append(lines, "", m.styles.Muted.Render("  No authentication"))
	case "basic":
		lines = append(lines, "",
			m.renderField("Username", m.username, 1),
			m.renderField("Password", m.password, 2))
	case "bearer":
		lines = append(lines, "", m.renderField("Token", m.token, 1))
	}

	return strings.Join(lines, "\n")
}

func (m AuthSection) renderField(label string, input textinput.Model, fieldIdx int) string {
	prefix := "  "
	if m.cursor == fieldIdx {
		prefix = "> "
	}

	labelStr := m.styles.Key.Render(lipgloss.NewStyle().Width(10).Render(label))

	if m.cursor == fieldIdx && m.editing {
		return prefix + labelStr + " " + input.View()
	}

	val := input.Value()
	if val == "" {
		return prefix + labelStr + " " + m.styles.Muted.Render(input.Placeholder)
	}
	return prefix + labelStr + " " + m.styles.Normal.Render(val)
}
