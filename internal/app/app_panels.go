package app

import (
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baturalpk/restdeck/internal/ui/msgs"
)

func (a App) panelByID(id msgs.PanelID) *panel {
	for _, p := range a.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// openPanel appends a transient editor panel and activates it.
func (a *App) openPanel() *panel {
	p := newPanel(msgs.PanelEditor, a.theme, a.styles, !a.cfg.InsecureSkipVerify)
	p.editor.SetSize(a.frame.EditorWidth, a.frame.ContentHeight)
	p.response.SetSize(a.frame.ResponseWidth, a.frame.ContentHeight)

	a.panels = append(a.panels, p)
	a.active = len(a.panels) - 1
	a.updateFocus()
	a.syncTabs()
	return p
}

// closeActivePanel removes the active panel and cancels its in-flight
// requests. The deck panel is pinned and never closes.
func (a App) closeActivePanel() (tea.Model, tea.Cmd) {
	p := a.activePanel()
	if p.kind == msgs.PanelDeck {
		return a, a.toast.Show("The deck panel cannot be closed", true, 2*time.Second)
	}

	p.cancelAll()
	a.panels = append(a.panels[:a.active], a.panels[a.active+1:]...)
	if a.active >= len(a.panels) {
		a.active = len(a.panels) - 1
	}
	a.updateFocus()
	a.syncTabs()
	return a, nil
}

func (a *App) switchPanel(index int) {
	a.active = index
	a.updateFocus()
	a.syncTabs()
}

// openExternalEditor edits the active panel's body in $EDITOR via a temp
// file.
func (a App) openExternalEditor() (tea.Model, tea.Cmd) {
	editorCmd := a.cfg.Editor
	if editorCmd == "" {
		editorCmd = os.Getenv("EDITOR")
	}
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "restdeck-body-*.txt")
	if err != nil {
		return a, a.toast.Show("Failed to create temp file: "+err.Error(), true, 3*time.Second)
	}

	if body := a.activePanel().editor.Body(); body != "" {
		tmpFile.WriteString(body)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()

	c := exec.Command(editorCmd, tmpPath)
	return a, tea.ExecProcess(c, func(err error) tea.Msg {
		defer os.Remove(tmpPath)
		if err != nil {
			return msgs.EditorDoneMsg{}
		}
		data, err := os.ReadFile(tmpPath)
		if err != nil {
			return msgs.EditorDoneMsg{}
		}
		return msgs.EditorDoneMsg{Content: string(data)}
	})
}
