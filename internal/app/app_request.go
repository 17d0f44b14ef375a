package app

import (
	"encoding/json"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	corehistory "github.com/baturalpk/restdeck/internal/core/history"
	"github.com/baturalpk/restdeck/internal/export"
	"github.com/baturalpk/restdeck/internal/ui/msgs"
)

// submitActive builds the active panel's request and kicks off execution.
func (a App) submitActive() (tea.Model, tea.Cmd) {
	p := a.activePanel()
	req := p.editor.BuildRequest()
	if req.URL == "" {
		return a, func() tea.Msg {
			return msgs.StatusMsg{Text: "URL is required", Duration: 2 * time.Second}
		}
	}
	return a.startRequest(msgs.MakeRequestMsg{Panel: p.id, Request: req})
}

// startRequest registers an in-flight submission and returns the command
// that executes it. The executor never fails; transport errors come back as
// the status-0 sentinel inside the record.
func (a App) startRequest(msg msgs.MakeRequestMsg) (tea.Model, tea.Cmd) {
	p := a.panelByID(msg.Panel)
	if p == nil {
		return a, nil
	}

	seq, ctx := p.begin()
	p.response.SetLoading(true)
	a.syncTabs()

	executor := a.executor
	panelID := p.id
	req := msg.Request
	run := func() tea.Msg {
		rec := executor.Execute(ctx, req)
		return msgs.ResponseMsg{Panel: panelID, Seq: seq, Request: req, Record: rec}
	}

	return a, tea.Batch(run, p.response.Init())
}

// handleResponse delivers a completed record to its panel. A result whose
// panel was closed in the meantime is dropped; nothing else observes it.
func (a App) handleResponse(msg msgs.ResponseMsg) (tea.Model, tea.Cmd) {
	p := a.panelByID(msg.Panel)
	if p == nil {
		return a, nil
	}

	p.finish(msg.Seq)
	p.response.SetRecord(msg.Record)

	var cmds []tea.Cmd
	if p.kind == msgs.PanelDeck && a.store != nil {
		if err := a.appendHistory(msg); err != nil {
			cmds = append(cmds, a.toast.Show("History write failed: "+err.Error(), true, 3*time.Second))
		}
		a.reloadHistory()
	}

	a.syncTabs()
	return a, tea.Batch(cmds...)
}

// appendHistory records one deck submission. Entries land in completion
// order, failures included.
func (a App) appendHistory(msg msgs.ResponseMsg) error {
	rec := msg.Record
	headersJSON, _ := json.Marshal(rec.Headers)
	cookiesJSON, _ := json.Marshal(rec.Cookies)

	_, err := a.store.Append(corehistory.Entry{
		Method:     msg.Request.Method,
		URL:        msg.Request.URL,
		Status:     rec.Status,
		StatusText: rec.StatusText,
		Size:       int64(rec.Size),
		Time:       rec.Time,
		Body:       rec.Body,
		Headers:    string(headersJSON),
		Cookies:    string(cookiesJSON),
		Timestamp:  time.Now(),
	})
	return err
}

func (a *App) reloadHistory() {
	if a.store == nil {
		return
	}
	entries, err := a.store.List()
	if err != nil {
		return
	}
	if limit := a.cfg.HistoryLimit; limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	a.historyPane.SetEntries(entries)
}

// reopenEntry loads a history entry into a fresh transient panel.
func (a App) reopenEntry(id int64) (tea.Model, tea.Cmd) {
	if a.store == nil {
		return a, nil
	}
	e, err := a.store.Get(id)
	if err != nil {
		return a, a.toast.Show("Entry not found", true, 2*time.Second)
	}

	p := a.openPanel()
	p.editor.LoadEntry(e)
	p.response.SetRecord(e.Record())
	a.syncTabs()
	return a, func() tea.Msg {
		return msgs.FocusRegionMsg{Region: msgs.RegionEditor}
	}
}

// openLink hands a URL to the platform browser. The URL is passed through
// as typed; launch failures surface as a toast.
func (a App) openLink(url string) (tea.Model, tea.Cmd) {
	if url == "" {
		return a, a.toast.Show("No URL to open", true, 2*time.Second)
	}
	return a, func() tea.Msg {
		return msgs.LinkOpenedMsg{URL: url, Err: openBrowser(url)}
	}
}

func (a App) copyAsCurl() (tea.Model, tea.Cmd) {
	req := a.activePanel().editor.BuildRequest()
	if req.URL == "" {
		return a, a.toast.Show("No URL to copy", true, 2*time.Second)
	}

	if err := clipboard.WriteAll(export.AsCurl(req)); err != nil {
		return a, a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
	}
	return a, a.toast.Show("Copied as cURL", false, 2*time.Second)
}
