package msgs

import "testing"

func TestPanelStateString(t *testing.T) {
	tests := []struct {
		name  string
		state PanelState
		want  string
	}{
		{name: "idle", state: PanelIdle, want: "IDLE"},
		{name: "executing", state: PanelExecuting, want: "EXECUTING"},
		{name: "unknown", state: PanelState(99), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
