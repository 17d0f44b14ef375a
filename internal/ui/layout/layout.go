package layout

// Frame holds calculated dimensions for the history, editor, and response
// columns.
type Frame struct {
	Width  int
	Height int

	HistoryWidth  int
	EditorWidth   int
	ResponseWidth int

	ContentHeight int // height minus tab bar and status bar

	HistoryVisible bool
	TwoColumn      bool
	SingleColumn   bool
}

const (
	tabBarHeight    = 1
	statusBarHeight = 1
	minHistoryWidth = 24
	maxHistoryWidth = 42
)

// Calculate computes the frame from terminal dimensions. Below 64 columns
// everything stacks into a single column; below 104 the history column is
// dropped and editor and response split the width.
func Calculate(width, height int, historyVisible bool) Frame {
	f := Frame{
		Width:          width,
		Height:         height,
		HistoryVisible: historyVisible,
		ContentHeight:  height - tabBarHeight - statusBarHeight,
	}

	if f.ContentHeight < 1 {
		f.ContentHeight = 1
	}

	switch {
	case width < 64:
		f.SingleColumn = true
		f.HistoryVisible = false
		f.EditorWidth = width
		f.ResponseWidth = width
	case width < 104:
		f.TwoColumn = true
		f.HistoryVisible = false
		f.EditorWidth = width / 2
		f.ResponseWidth = width - f.EditorWidth
	default:
		remaining := width
		if historyVisible {
			f.HistoryWidth = clamp(width/4, minHistoryWidth, maxHistoryWidth)
			remaining = width - f.HistoryWidth
		}
		f.EditorWidth = remaining / 2
		f.ResponseWidth = remaining - f.EditorWidth
	}

	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
