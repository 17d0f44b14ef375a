package response

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/baturalpk/restdeck/internal/ui/theme"
)

// CookiesModel displays the cookie pairs extracted at normalization. The
// splitter treats every "k=v" segment of Set-Cookie as a pair, so attribute
// rows like Path=/ appear here too.
type CookiesModel struct {
	viewport   viewport.Model
	styles     theme.Styles
	width      int
	hasCookies bool
}

// NewCookiesModel creates a new cookies viewer.
func NewCookiesModel(s theme.Styles) CookiesModel {
	return CookiesModel{
		viewport: viewport.New(0, 0),
		styles:   s,
	}
}

// SetCookies populates the display.
func (m *CookiesModel) SetCookies(cookies map[string]string) {
	m.hasCookies = len(cookies) > 0
	if !m.hasCookies {
		return
	}

	names := make([]string, 0, len(cookies))
	for n := range cookies {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	header := fmt.Sprintf("  %-24s %s", "Name", "Value")
	b.WriteString(m.styles.Key.Render(header))
	b.WriteString("\n")
	sepW := m.width - 2
	if sepW < 10 {
		sepW = 10
	}
	b.WriteString(m.styles.Muted.Render(strings.Repeat("─", sepW)))
	b.WriteString("\n")

	for _, n := range names {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.KVKey.Render(fmt.Sprintf("%-24s", truncateCell(n, 24))),
			m.styles.Normal.Render(cookies[n])))
	}

	m.viewport.SetContent(strings.TrimRight(b.String(), "\n"))
}

// SetSize updates the viewport dimensions.
func (m *CookiesModel) SetSize(w, h int) {
	m.width = w
	m.viewport.Width = w
	m.viewport.Height = h
}

func (m CookiesModel) Init() tea.Cmd {
	return nil
}

func (m CookiesModel) Update(msg tea.Msg) (CookiesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m CookiesModel) View() string {
	if !m.hasCookies {
		return m.styles.Muted.Render("No cookies in response")
	}
	return m.viewport.View()
}

func truncateCell(s string, maxW int) string {
	if len(s) > maxW {
		if maxW > 3 {
			return s[:maxW-3] + "..."
		}
		return s[:maxW]
	}
	return s
}
