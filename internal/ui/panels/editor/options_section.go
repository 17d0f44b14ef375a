package editor

import (
	"strings"

	"github.com/baturalpk/restdeck/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// OptionsSection holds per-request transport options. Verify applies to
// this request only; submissions in other panels are unaffected.
type OptionsSection struct {
	Verify bool

	cursor int
	styles theme.Styles
}

// NewOptionsSection creates the options section. verifyDefault comes from
// config and seeds each new panel.
func NewOptionsSection(styles theme.Styles, verifyDefault bool) OptionsSection {
	return OptionsSection{
		Verify: verifyDefault,
		styles: styles,
	}
}

func (m OptionsSection) Update(msg tea.Msg) (OptionsSection, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ", "v":
			m.Verify = !m.Verify
		}
	}
	return m, nil
}

func (m OptionsSection) View() string {
	var lines []string

	check := "[ ]"
	if m.Verify {
		check = "[x]"
	}
	lines = append(lines, "> "+m.styles.Normal.Render(check+" Verify TLS certificates"))
	if !m.Verify {
		lines = append(lines, "", m.styles.Warning.Render("  Certificate errors will be ignored for this request"))
	}

	return strings.Join(lines, "\n")
}
