package editor

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/core/history"
	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/components"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var httpMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// Section identifies the active section below the URL bar.
type Section int

const (
	SectionQuery Section = iota
	SectionHeaders
	SectionAuth
	SectionBody
	SectionOptions
)

var sectionNames = []string{"Query", "Headers", "Auth", "Body", "Options"}

// Model is the request editor form: method, URL, and the five sections.
type Model struct {
	Method      string
	methodIndex int

	url textinput.Model

	activeSection Section
	query         components.ParamTable
	headers       components.ParamTable
	auth          AuthSection
	body          textarea.Model
	options       OptionsSection

	// Focus tracking: 0=method, 1=url, 2=section content
	focusField int

	focused bool
	width   int
	height  int
	styles  theme.Styles
}

// New creates an editor form. verifyDefault seeds the per-request
// certificate verification toggle.
func New(styles theme.Styles, verifyDefault bool) Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "Enter URL..."
	urlInput.CharLimit = 2048
	urlInput.Width = 40

	bodyArea := textarea.New()
	bodyArea.Placeholder = "Request body..."
	bodyArea.ShowLineNumbers = false
	bodyArea.CharLimit = 0
	bodyArea.SetWidth(40)
	bodyArea.SetHeight(6)

	headers := components.NewParamTable(styles)
	headers.SetParams([]protocol.Param{
		{Key: "Accept", Value: "*/*", Enabled: true},
	})

	return Model{
		Method:  "GET",
		url:     urlInput,
		query:   components.NewParamTable(styles),
		headers: headers,
		auth:    NewAuthSection(styles),
		body:    bodyArea,
		options: NewOptionsSection(styles, verifyDefault),
		styles:  styles,
		width:   60,
		height:  20,
	}
}

// SetFocused sets whether the editor pane has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	urlW := w - 12
	if urlW < 10 {
		urlW = 10
	}
	m.url.Width = urlW

	contentW := w - 2
	if contentW < 10 {
		contentW = 10
	}
	m.query.SetWidth(contentW)
	m.headers.SetWidth(contentW)
	m.auth.SetSize(contentW)

	bodyH := h - 6
	if bodyH < 3 {
		bodyH = 3
	}
	m.body.SetWidth(contentW)
	m.body.SetHeight(bodyH)
}

// URL returns the current URL text.
func (m Model) URL() string {
	return strings.TrimSpace(m.url.Value())
}

// FocusURL focuses the URL input.
func (m *Model) FocusURL() {
	m.focusField = 1
	m.url.Focus()
	m.url.CursorEnd()
}

// Body returns the trimmed body text.
func (m Model) Body() string {
	return strings.TrimSpace(m.body.Value())
}

// SetBody replaces the body text.
func (m *Model) SetBody(content string) {
	m.body.SetValue(content)
}

// Editing reports whether any child is in text editing mode. Keys like
// Ctrl+Enter still work while editing; plain shortcuts do not.
func (m Model) Editing() bool {
	if m.focusField == 1 && m.url.Focused() {
		return true
	}
	if m.focusField == 2 {
		switch m.activeSection {
		case SectionQuery:
			return m.query.Editing()
		case SectionHeaders:
			return m.headers.Editing()
		case SectionAuth:
			return m.auth.Editing()
		case SectionBody:
			return m.body.Focused()
		}
	}
	return false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing() {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	var cmds []tea.Cmd
	if m.focusField == 1 {
		var cmd tea.Cmd
		m.url, cmd = m.url.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.focusField == 2 {
		cmds = append(cmds, m.updateSection(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focusField = (m.focusField + 1) % 3
		m.syncFocus()
	case "shift+tab":
		m.focusField = (m.focusField + 2) % 3
		m.syncFocus()
	case "enter":
		switch m.focusField {
		case 0:
			m.cycleMethod(1)
		case 1:
			m.url.Focus()
			return m, textinput.Blink
		case 2:
			return m.enterSection()
		}
	case "m":
		m.cycleMethod(1)
	case "M":
		m.cycleMethod(-1)
	case " ":
		if m.focusField == 0 {
			m.cycleMethod(1)
		} else if m.focusField == 2 {
			cmds := m.updateSection(msg)
			return m, tea.Batch(cmds...)
		}
	case "h", "left":
		if m.focusField == 2 && m.activeSection > SectionQuery {
			m.activeSection--
		}
	case "l", "right":
		if m.focusField == 2 && m.activeSection < SectionOptions {
			m.activeSection++
		}
	case "1":
		m.activeSection = SectionQuery
	case "2":
		m.activeSection = SectionHeaders
	case "3":
		m.activeSection = SectionAuth
	case "4":
		m.activeSection = SectionBody
	case "5":
		m.activeSection = SectionOptions
	default:
		if m.focusField == 2 {
			cmds := m.updateSection(msg)
			return m, tea.Batch(cmds...)
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.focusField == 1 {
		if msg.String() == "esc" || msg.String() == "enter" {
			m.url.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.url, cmd = m.url.Update(msg)
		return m, cmd
	}

	switch m.activeSection {
	case SectionQuery:
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	case SectionHeaders:
		var cmd tea.Cmd
		m.headers, cmd = m.headers.Update(msg)
		return m, cmd
	case SectionAuth:
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(msg)
		return m, cmd
	case SectionBody:
		if msg.String() == "esc" {
			m.body.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) enterSection() (Model, tea.Cmd) {
	switch m.activeSection {
	case SectionQuery:
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return *m, cmd
	case SectionHeaders:
		var cmd tea.Cmd
		m.headers, cmd = m.headers.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return *m, cmd
	case SectionAuth:
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return *m, cmd
	case SectionBody:
		cmd := m.body.Focus()
		return *m, cmd
	case SectionOptions:
		var cmd tea.Cmd
		m.options, cmd = m.options.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return *m, cmd
	}
	return *m, nil
}

func (m *Model) updateSection(msg tea.Msg) []tea.Cmd {
	var cmd tea.Cmd
	switch m.activeSection {
	case SectionQuery:
		m.query, cmd = m.query.Update(msg)
	case SectionHeaders:
		m.headers, cmd = m.headers.Update(msg)
	case SectionAuth:
		m.auth, cmd = m.auth.Update(msg)
	case SectionBody:
		m.body, cmd = m.body.Update(msg)
	case SectionOptions:
		m.options, cmd = m.options.Update(msg)
	}
	if cmd != nil {
		return []tea.Cmd{cmd}
	}
	return nil
}

func (m *Model) syncFocus() {
	m.url.Blur()
	m.body.Blur()
}

func (m *Model) cycleMethod(dir int) {
	n := len(httpMethods)
	m.methodIndex = (m.methodIndex + dir + n) % n
	m.Method = httpMethods[m.methodIndex]
}

// BuildRequest assembles a protocol.Request from the form. Row order is
// preserved for query params and headers.
func (m Model) BuildRequest() *protocol.Request {
	return &protocol.Request{
		ID:                 uuid.NewString(),
		Method:             m.Method,
		URL:                m.URL(),
		Query:              m.query.Params(),
		Headers:            m.headers.Params(),
		Auth:               m.auth.Build(),
		Body:               m.Body(),
		InsecureSkipVerify: !m.options.Verify,
	}
}

// LoadEntry populates the form from a history entry so a past request can
// be edited and resent.
func (m *Model) LoadEntry(e history.Entry) {
	m.Method = e.Method
	for i, method := range httpMethods {
		if method == e.Method {
			m.methodIndex = i
			break
		}
	}
	m.url.SetValue(e.URL)
	m.focusField = 1
}

// View renders the editor form.
func (m Model) View() string {
	var b strings.Builder

	methodLabel := m.styles.MethodStyle(m.Method).Render(m.Method)
	if m.focusField == 0 {
		methodLabel = m.styles.Cursor.Render(" " + m.Method + " ")
	}
	b.WriteString(methodLabel + " " + m.url.View())
	b.WriteString("\n\n")

	var tabs []string
	for i, name := range sectionNames {
		if Section(i) == m.activeSection {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch m.activeSection {
	case SectionQuery:
		b.WriteString(m.query.View())
	case SectionHeaders:
		b.WriteString(m.headers.View())
	case SectionAuth:
		b.WriteString(m.auth.View())
	case SectionBody:
		b.WriteString(m.body.View())
	case SectionOptions:
		b.WriteString(m.options.View())
	}

	return b.String()
}
