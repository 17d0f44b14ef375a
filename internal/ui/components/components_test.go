package components

import (
	"strings"
	"testing"
	"time"

	"github.com/baturalpk/restdeck/internal/protocol"
	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func testStyles() theme.Styles {
	return theme.NewStyles(theme.Default())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestParamTable_StartsWithBlankRow(t *testing.T) {
	pt := NewParamTable(testStyles())
	rows := pt.Params()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Enabled {
		t.Error("initial row should be enabled")
	}
}

func TestParamTable_PreservesOrder(t *testing.T) {
	pt := NewParamTable(testStyles())
	in := []protocol.Param{
		{Key: "z", Value: "1", Enabled: true},
		{Key: "a", Value: "2", Enabled: true},
		{Key: "m", Value: "3", Enabled: false},
	}
	pt.SetParams(in)

	out := pt.Params()
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("row %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestParamTable_ToggleEnabled(t *testing.T) {
	pt := NewParamTable(testStyles())
	pt.SetParams([]protocol.Param{{Key: "k", Value: "v", Enabled: true}})

	pt, _ = pt.Update(keyMsg(" "))
	if pt.Params()[0].Enabled {
		t.Error("space should toggle row off")
	}
	pt, _ = pt.Update(keyMsg(" "))
	if !pt.Params()[0].Enabled {
		t.Error("space should toggle row back on")
	}
}

func TestParamTable_DeleteLastRowResets(t *testing.T) {
	pt := NewParamTable(testStyles())
	pt.SetParams([]protocol.Param{{Key: "k", Value: "v", Enabled: false}})

	pt, _ = pt.Update(keyMsg("d"))
	rows := pt.Params()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after delete, got %d", len(rows))
	}
	if rows[0].Key != "" || !rows[0].Enabled {
		t.Errorf("last row should reset to blank enabled, got %+v", rows[0])
	}
}

func TestParamTable_EditCommitsOnEnter(t *testing.T) {
	pt := NewParamTable(testStyles())

	pt, _ = pt.Update(keyMsg("enter"))
	if !pt.Editing() {
		t.Fatal("enter should start editing")
	}
	pt, _ = pt.Update(keyMsg("q"))
	pt, _ = pt.Update(keyMsg("enter"))
	if pt.Editing() {
		t.Fatal("enter should commit the edit")
	}
	if got := pt.Params()[0].Key; got != "q" {
		t.Errorf("key = %q, want q", got)
	}
}

func TestTabBar_ActiveClamped(t *testing.T) {
	tb := NewTabBar(theme.Default(), testStyles())
	tb.SetTabs([]PanelTab{
		{Name: "deck", Method: "GET", Pinned: true},
		{Name: "req", Method: "POST"},
	})
	tb.SetActive(1)
	tb.SetTabs([]PanelTab{{Name: "deck", Method: "GET", Pinned: true}})

	tb.SetWidth(80)
	if out := tb.View(); !strings.Contains(out, "deck") {
		t.Error("view should render remaining tab")
	}
}

func TestStatusBar_ShowsPanelState(t *testing.T) {
	sb := NewStatusBar(theme.Default(), testStyles())
	sb.SetWidth(100)
	sb.SetState(msgs.PanelExecuting)

	if out := sb.View(); !strings.Contains(out, "EXECUTING") {
		t.Error("status bar should show EXECUTING state")
	}

	sb.SetState(msgs.PanelIdle)
	if out := sb.View(); !strings.Contains(out, "IDLE") {
		t.Error("status bar should show IDLE state")
	}
}

func TestStatusBar_FailureSummary(t *testing.T) {
	sb := NewStatusBar(theme.Default(), testStyles())
	sb.SetWidth(120)
	sb.SetSummary(0, "Error", 15*time.Millisecond, 42, "")

	out := sb.View()
	if !strings.Contains(out, "Error") {
		t.Error("status bar should show the failure status text")
	}
	if strings.Contains(out, "0 Error") {
		t.Error("failure summary should not render the zero status code")
	}
}

func TestCommandPalette_FiltersAndEmits(t *testing.T) {
	cp := NewCommandPalette(theme.Default(), testStyles())
	cp.Open()

	for _, r := range "curl" {
		cp, _ = cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	var cmd tea.Cmd
	cp, cmd = cp.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on a match should emit a command")
	}
	if _, ok := cmd().(msgs.CopyAsCurlMsg); !ok {
		t.Errorf("expected CopyAsCurlMsg, got %T", cmd())
	}
	if cp.Visible {
		t.Error("palette should close after selection")
	}
}

func TestCommandPalette_ThemePicker(t *testing.T) {
	cp := NewCommandPalette(theme.Default(), testStyles())
	cp.OpenThemePicker([]string{"nord"})

	var cmd tea.Cmd
	cp, cmd = cp.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	got, ok := cmd().(msgs.SwitchThemeMsg)
	if !ok {
		t.Fatalf("expected SwitchThemeMsg, got %T", cmd())
	}
	if got.Name != "nord" {
		t.Errorf("theme = %q, want nord", got.Name)
	}
	_ = cp
}

func TestToast_DismissClears(t *testing.T) {
	to := NewToast(theme.Default(), testStyles())
	cmd := to.Show("copied", false, 10*time.Millisecond)
	if cmd == nil {
		t.Fatal("Show should return dismiss command")
	}
	if !to.Visible {
		t.Fatal("toast should be visible after Show")
	}

	to, _ = to.Update(toastDismissMsg{})
	if to.Visible {
		t.Error("toast should hide on dismiss")
	}
}

func TestTabBar_ClickSwitchesPanel(t *testing.T) {
	m := NewTabBar(theme.Default(), testStyles())
	m.SetTabs([]PanelTab{
		{Name: "deck", Method: "GET", Pinned: true},
		{Name: "new request", Method: "POST"},
	})
	m.SetWidth(80)

	labels := m.renderLabels()
	if len(labels) != 2 {
		t.Fatalf("label count = %d, want 2", len(labels))
	}
	secondTabX := lipgloss.Width(labels[0]) + 1

	_, cmd := m.Update(tea.MouseMsg{
		X: secondTabX, Y: 0,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	if cmd == nil {
		t.Fatal("click on a tab should produce a command")
	}
	sw, ok := cmd().(msgs.SwitchPanelMsg)
	if !ok || sw.Index != 1 {
		t.Fatalf("expected switch to panel 1, got %#v", cmd())
	}
}

func TestTabBar_ClickPlusOpensPanel(t *testing.T) {
	m := NewTabBar(theme.Default(), testStyles())
	m.SetTabs([]PanelTab{{Name: "deck", Method: "GET", Pinned: true}})
	m.SetWidth(80)

	plusX := lipgloss.Width(m.renderLabels()[0]) + 1

	_, cmd := m.Update(tea.MouseMsg{
		X: plusX, Y: 0,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	if cmd == nil {
		t.Fatal("click on the plus button should produce a command")
	}
	if _, ok := cmd().(msgs.StartNewRequestMsg); !ok {
		t.Fatalf("expected a new-panel message, got %#v", cmd())
	}
}

func TestTabBar_ClickPastBarIsIgnored(t *testing.T) {
	m := NewTabBar(theme.Default(), testStyles())
	m.SetTabs([]PanelTab{{Name: "deck", Method: "GET"}})
	m.SetWidth(80)

	if _, cmd := m.Update(tea.MouseMsg{
		X: 79, Y: 0,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	}); cmd != nil {
		t.Error("click beyond the plus button should do nothing")
	}
}
