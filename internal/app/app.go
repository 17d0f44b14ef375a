package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baturalpk/restdeck/internal/config"
	corehistory "github.com/baturalpk/restdeck/internal/core/history"
	httpclient "github.com/baturalpk/restdeck/internal/protocol/http"
	"github.com/baturalpk/restdeck/internal/ui/components"
	"github.com/baturalpk/restdeck/internal/ui/layout"
	"github.com/baturalpk/restdeck/internal/ui/msgs"
	historypanel "github.com/baturalpk/restdeck/internal/ui/panels/history"
	"github.com/baturalpk/restdeck/internal/ui/theme"
)

// App is the root Bubble Tea model. It owns every panel, the shared history
// store, and the executor; panels talk to it only through messages.
type App struct {
	panels []*panel
	active int

	historyPane historypanel.Model

	tabBar         components.TabBar
	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast

	executor *httpclient.Executor
	store    *corehistory.Store
	cfg      config.Config

	focus          msgs.Region
	historyVisible bool
	frame          layout.Frame
	keys           KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates the root model. The first panel is the pinned deck; its
// completed requests are appended to the history store.
func New(cfg config.Config, store *corehistory.Store) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	executor := httpclient.NewExecutor()
	if cfg.DefaultTimeout > 0 {
		executor.SetTimeout(cfg.DefaultTimeout)
	}
	if cfg.Proxy.URL != "" {
		executor.SetProxy(cfg.Proxy.URL, cfg.Proxy.NoProxy)
	}

	a := App{
		panels: []*panel{newPanel(msgs.PanelDeck, t, s, !cfg.InsecureSkipVerify)},

		historyPane: historypanel.New(t, s),

		tabBar:         components.NewTabBar(t, s),
		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),

		executor: executor,
		store:    store,
		cfg:      cfg,

		focus:          msgs.RegionEditor,
		historyVisible: true,
		keys:           DefaultKeyMap(),

		theme:  t,
		styles: s,
	}

	a.reloadHistory()
	a.syncTabs()
	return a
}

func (a App) Init() tea.Cmd {
	return a.activePanel().response.Init()
}

func (a App) activePanel() *panel {
	return a.panels[a.active]
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.frame = layout.HandleResize(msg, a.historyVisible)
		a.resizePanes()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.SubmitRequestMsg:
		return a.submitActive()

	case msgs.MakeRequestMsg:
		return a.startRequest(msg)

	case msgs.ResponseMsg:
		return a.handleResponse(msg)

	case msgs.StartNewRequestMsg:
		a.openPanel()
		return a, nil

	case msgs.ClosePanelMsg:
		return a.closeActivePanel()

	case msgs.NextPanelMsg:
		a.switchPanel((a.active + 1) % len(a.panels))
		return a, nil

	case msgs.PrevPanelMsg:
		a.switchPanel((a.active - 1 + len(a.panels)) % len(a.panels))
		return a, nil

	case msgs.SwitchPanelMsg:
		if msg.Index >= 0 && msg.Index < len(a.panels) {
			a.switchPanel(msg.Index)
		}
		return a, nil

	case msgs.HistorySelectedMsg:
		return a.reopenEntry(msg.ID)

	case msgs.OpenLinkMsg:
		return a.openLink(msg.URL)

	case msgs.LinkOpenedMsg:
		if msg.Err != nil {
			return a, a.toast.Show("Browser launch failed: "+msg.Err.Error(), true, 3*time.Second)
		}
		return a, a.toast.Show("Opened "+msg.URL, false, 2*time.Second)

	case msgs.ToggleHistoryMsg:
		a.historyVisible = !a.historyVisible
		a.frame = layout.Calculate(a.width, a.height, a.historyVisible)
		a.resizePanes()
		return a, nil

	case msgs.FocusRegionMsg:
		a.focus = msg.Region
		a.updateFocus()
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.commandPalette.Open()
		return a, nil

	case msgs.OpenThemePickerMsg:
		a.commandPalette.OpenThemePicker(theme.Names())
		return a, nil

	case msgs.SwitchThemeMsg:
		a.applyTheme(msg.Name)
		return a, a.toast.Show("Theme: "+msg.Name, false, 2*time.Second)

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			return a, a.statusBar.ClearAfter(msg.Duration)
		}
		return a, nil

	case msgs.ToastMsg:
		return a, a.toast.Show(msg.Text, msg.IsError, msg.Duration)

	case msgs.CopyAsCurlMsg:
		return a.copyAsCurl()

	case msgs.OpenEditorMsg:
		return a.openExternalEditor()

	case msgs.EditorDoneMsg:
		if msg.Content != "" {
			a.activePanel().editor.SetBody(msg.Content)
			return a, a.toast.Show("Body updated from editor", false, 2*time.Second)
		}
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.tabBar, cmd = a.tabBar.Update(msg)
	cmds = append(cmds, cmd)
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	p := a.activePanel()
	p.response, cmd = p.response.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.commandPalette.Visible {
		var cmd tea.Cmd
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		return a, cmd
	}
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}

	editing := (a.focus == msgs.RegionEditor && a.activePanel().editor.Editing()) ||
		(a.focus == msgs.RegionHistory && a.historyPane.Filtering())

	if cmd := a.handleGlobalKey(msg); cmd != nil {
		return a, cmd
	}
	if editing {
		return a.dispatchToFocused(msg)
	}
	return a.handlePaneKey(msg)
}

// handleGlobalKey matches chords that work even while a text input is live.
func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.SendRequest), msg.String() == "ctrl+enter":
		return func() tea.Msg { return msgs.SubmitRequestMsg{} }
	case key.Matches(msg, a.keys.CommandPalette):
		return func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.NewPanel):
		return func() tea.Msg { return msgs.StartNewRequestMsg{} }
	case key.Matches(msg, a.keys.ClosePanel):
		return func() tea.Msg { return msgs.ClosePanelMsg{} }
	}
	return nil
}

func (a App) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CycleFocus):
		if a.focus != msgs.RegionEditor || !a.activePanel().editor.Editing() {
			a.cycleFocus(false)
			return a, nil
		}
	case key.Matches(msg, a.keys.CycleFocusRev):
		a.cycleFocus(true)
		return a, nil
	case key.Matches(msg, a.keys.ToggleHistory):
		return a.Update(msgs.ToggleHistoryMsg{})
	case key.Matches(msg, a.keys.PrevPanel), key.Matches(msg, a.keys.NextPanel):
		var cmd tea.Cmd
		a.tabBar, cmd = a.tabBar.Update(msg)
		return a, cmd
	case key.Matches(msg, a.keys.Help):
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil
	case key.Matches(msg, a.keys.FocusURL):
		if a.focus == msgs.RegionEditor {
			a.activePanel().editor.FocusURL()
			return a, nil
		}
	case key.Matches(msg, a.keys.Submit):
		return a.submitActive()
	case key.Matches(msg, a.keys.ExternalEditor):
		return a.openExternalEditor()
	}

	return a.dispatchToFocused(msg)
}

func (a App) dispatchToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case msgs.RegionHistory:
		a.historyPane, cmd = a.historyPane.Update(msg)
	case msgs.RegionEditor:
		p := a.activePanel()
		p.editor, cmd = p.editor.Update(msg)
	case msgs.RegionResponse:
		p := a.activePanel()
		p.response, cmd = p.response.Update(msg)
	}
	return a, cmd
}

func (a *App) cycleFocus(reverse bool) {
	regions := []msgs.Region{msgs.RegionHistory, msgs.RegionEditor, msgs.RegionResponse}
	if !a.historyVisible || a.frame.TwoColumn || a.frame.SingleColumn {
		regions = []msgs.Region{msgs.RegionEditor, msgs.RegionResponse}
	}

	idx := 0
	for i, r := range regions {
		if r == a.focus {
			idx = i
			break
		}
	}

	if reverse {
		idx = (idx - 1 + len(regions)) % len(regions)
	} else {
		idx = (idx + 1) % len(regions)
	}

	a.focus = regions[idx]
	a.updateFocus()
}

func (a *App) updateFocus() {
	a.historyPane.SetFocused(a.focus == msgs.RegionHistory)
	p := a.activePanel()
	p.editor.SetFocused(a.focus == msgs.RegionEditor)
	p.response.SetFocused(a.focus == msgs.RegionResponse)
}

func (a *App) resizePanes() {
	f := a.frame
	a.historyPane.SetSize(f.HistoryWidth, f.ContentHeight)
	for _, p := range a.panels {
		p.editor.SetSize(f.EditorWidth, f.ContentHeight)
		p.response.SetSize(f.ResponseWidth, f.ContentHeight)
	}
	a.tabBar.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.updateFocus()
}

func (a *App) syncTabs() {
	tabs := make([]components.PanelTab, len(a.panels))
	for i, p := range a.panels {
		tabs[i] = components.PanelTab{
			Name:    p.title(),
			Method:  p.editor.Method,
			Pinned:  p.kind == msgs.PanelDeck,
			Running: p.state == msgs.PanelExecuting,
		}
	}
	a.tabBar.SetTabs(tabs)
	a.tabBar.SetActive(a.active)
	a.syncStatusBar()
}

func (a *App) syncStatusBar() {
	p := a.activePanel()
	a.statusBar.SetState(p.state)
	if rec := p.response.Record(); rec != nil {
		a.statusBar.SetSummary(rec.Status, rec.StatusText, rec.Time,
			int64(rec.Size), rec.Headers["Content-Type"])
	} else {
		a.statusBar.SetSummary(0, "", 0, 0, "")
	}
}

// applyTheme switches the chrome to a new theme. Panels opened afterwards
// pick it up; existing panels keep their styles until closed.
func (a *App) applyTheme(name string) {
	t := theme.Resolve(name)
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s
	a.cfg.Theme = t.Name

	a.tabBar = components.NewTabBar(t, s)
	a.statusBar = components.NewStatusBar(t, s)
	a.commandPalette = components.NewCommandPalette(t, s)
	a.help = components.NewHelp(t, s)
	a.toast = components.NewToast(t, s)
	a.historyPane = historypanel.New(t, s)

	a.reloadHistory()
	a.resizePanes()
	a.syncTabs()
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	tabBar := a.tabBar.View()
	p := a.activePanel()

	var columns string
	if a.frame.SingleColumn {
		switch a.focus {
		case msgs.RegionHistory:
			columns = a.historyPane.View()
		case msgs.RegionResponse:
			columns = p.response.View()
		default:
			columns = p.editor.View()
		}
	} else {
		var views []string
		if a.frame.HistoryVisible {
			views = append(views, a.historyPane.View())
		}
		views = append(views, a.renderEditor(p), p.response.View())
		columns = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, tabBar, columns, a.statusBar.View())

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func (a App) renderEditor(p *panel) string {
	border := a.styles.UnfocusedBorder
	if a.focus == msgs.RegionEditor {
		border = a.styles.FocusedBorder
	}
	innerW := a.frame.EditorWidth - 2
	innerH := a.frame.ContentHeight - 2
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	return border.Width(innerW).Height(innerH).Render(p.editor.View())
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#16161e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := width - lipgloss.Width(overlay) - 2
	if gap < 0 {
		gap = 0
	}
	return lipgloss.NewStyle().MarginLeft(gap).Render(overlay) + "\n" + bg
}
