package msgs

import (
	"time"

	"github.com/baturalpk/restdeck/internal/protocol"
)

// PanelID identifies one panel instance for the lifetime of the process.
type PanelID string

// PanelKind distinguishes the pinned deck panel from transient editors.
type PanelKind int

const (
	// PanelDeck is the persistent first panel; its completed requests are
	// recorded to the history store.
	PanelDeck PanelKind = iota
	// PanelEditor is a transient request editor; it can be closed and its
	// requests are not recorded.
	PanelEditor
)

// PanelState is the per-panel request state machine.
type PanelState int

const (
	PanelIdle PanelState = iota
	PanelExecuting
)

func (s PanelState) String() string {
	switch s {
	case PanelIdle:
		return "IDLE"
	case PanelExecuting:
		return "EXECUTING"
	default:
		return "UNKNOWN"
	}
}

// Region identifies which pane inside the app has focus.
type Region int

const (
	RegionHistory Region = iota
	RegionEditor
	RegionResponse
)

// --- UI → controller ---

// MakeRequestMsg asks the controller to execute the panel's current request.
type MakeRequestMsg struct {
	Panel   PanelID
	Request *protocol.Request
}

// StartNewRequestMsg opens a fresh transient editor panel.
type StartNewRequestMsg struct{}

// ClosePanelMsg closes the active panel. Closing cancels that panel's
// in-flight requests; the deck panel itself cannot be closed.
type ClosePanelMsg struct{}

// OpenLinkMsg asks the controller to open a URL in the default browser.
type OpenLinkMsg struct {
	URL string
}

// HistorySelectedMsg reopens a history entry in a new editor panel.
type HistorySelectedMsg struct {
	ID int64
}

// --- controller → UI ---

// ResponseMsg delivers a completed (or failed) request back to the panel
// that submitted it. Seq ties the message to one in-flight execution so a
// late arrival for a closed panel is dropped instead of misdelivered.
type ResponseMsg struct {
	Panel   PanelID
	Seq     uint64
	Request *protocol.Request
	Record  *protocol.Response
}

// LinkOpenedMsg reports the outcome of an OpenLinkMsg.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// --- ambient UI messages ---

// FocusRegionMsg moves focus to a specific pane.
type FocusRegionMsg struct {
	Region Region
}

// NextPanelMsg / PrevPanelMsg cycle the active panel.
type NextPanelMsg struct{}
type PrevPanelMsg struct{}

// SwitchPanelMsg activates a panel by index.
type SwitchPanelMsg struct {
	Index int
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// SubmitRequestMsg submits the active panel's editor form.
type SubmitRequestMsg struct{}

// ToggleHistoryMsg shows or hides the history column.
type ToggleHistoryMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// OpenThemePickerMsg opens the palette in theme selection mode.
type OpenThemePickerMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// CopyAsCurlMsg copies the active panel's request as a cURL command.
type CopyAsCurlMsg struct{}

// OpenEditorMsg opens $EDITOR for the active panel's body.
type OpenEditorMsg struct{}

// EditorDoneMsg is emitted when $EDITOR exits with new content.
type EditorDoneMsg struct {
	Content string
}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}
