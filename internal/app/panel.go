package app

import (
	"context"

	"github.com/baturalpk/restdeck/internal/ui/msgs"
	"github.com/baturalpk/restdeck/internal/ui/panels/editor"
	"github.com/baturalpk/restdeck/internal/ui/panels/response"
	"github.com/baturalpk/restdeck/internal/ui/theme"
	"github.com/google/uuid"
)

// panel pairs an editor form with its response pane and tracks the request
// state machine. A panel is Executing while any submission is in flight and
// returns to Idle when the inflight table empties.
type panel struct {
	id   msgs.PanelID
	kind msgs.PanelKind

	editor   editor.Model
	response response.Model

	state    msgs.PanelState
	inflight map[uint64]context.CancelFunc
	nextSeq  uint64
}

func newPanel(kind msgs.PanelKind, t theme.Theme, s theme.Styles, verifyDefault bool) *panel {
	return &panel{
		id:       msgs.PanelID(uuid.NewString()),
		kind:     kind,
		editor:   editor.New(s, verifyDefault),
		response: response.New(t, s),
		state:    msgs.PanelIdle,
		inflight: map[uint64]context.CancelFunc{},
	}
}

// begin registers a new in-flight submission and returns its sequence
// number and context.
func (p *panel) begin() (uint64, context.Context) {
	seq := p.nextSeq
	p.nextSeq++

	ctx, cancel := context.WithCancel(context.Background())
	p.inflight[seq] = cancel
	p.state = msgs.PanelExecuting
	return seq, ctx
}

// finish retires a submission. The panel goes Idle only when nothing else
// is still in flight.
func (p *panel) finish(seq uint64) {
	if cancel, ok := p.inflight[seq]; ok {
		cancel()
		delete(p.inflight, seq)
	}
	if len(p.inflight) == 0 {
		p.state = msgs.PanelIdle
	}
}

// cancelAll aborts every in-flight submission. Called when the panel
// closes; late results are dropped by panel-ID lookup, not here.
func (p *panel) cancelAll() {
	for seq, cancel := range p.inflight {
		cancel()
		delete(p.inflight, seq)
	}
	p.state = msgs.PanelIdle
}

// title is the tab label: URL host+path, or a placeholder before the first
// URL is typed.
func (p *panel) title() string {
	if u := p.editor.URL(); u != "" {
		return trimScheme(u)
	}
	if p.kind == msgs.PanelDeck {
		return "deck"
	}
	return "new request"
}

func trimScheme(u string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(u) > len(prefix) && u[:len(prefix)] == prefix {
			return u[len(prefix):]
		}
	}
	return u
}
