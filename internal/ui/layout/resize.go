package layout

import tea "github.com/charmbracelet/bubbletea"

// HandleResize processes a WindowSizeMsg and returns the updated frame.
func HandleResize(msg tea.WindowSizeMsg, historyVisible bool) Frame {
	return Calculate(msg.Width, msg.Height, historyVisible)
}
