package analyzer

import (
	"errors"
	"testing"
)

func TestGate_Transitions(t *testing.T) {
	var g gate

	if g.current() != GateUnauthorized {
		t.Fatalf("initial state = %v, want unauthorized", g.current())
	}

	if err := g.start(); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("start() before authorize error = %v, want ErrNotAuthorized", err)
	}

	g.authorize()
	if g.current() != GateAuthorized {
		t.Fatalf("state after authorize = %v, want authorized", g.current())
	}

	if err := g.start(); err != nil {
		t.Fatalf("start() error = %v", err)
	}
	if g.current() != GateRunning {
		t.Fatalf("state after start = %v, want running", g.current())
	}

	if err := g.start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second start() error = %v, want ErrAlreadyRunning", err)
	}

	g.stop()
	if g.current() != GateAuthorized {
		t.Fatalf("state after stop = %v, want authorized", g.current())
	}

	// Restartable after stop.
	if err := g.start(); err != nil {
		t.Fatalf("restart error = %v", err)
	}
}

func TestGate_AuthorizeWhileRunning(t *testing.T) {
	var g gate
	g.authorize()
	if err := g.start(); err != nil {
		t.Fatalf("start() error = %v", err)
	}

	// authorize must never demote a running gate.
	g.authorize()
	if g.current() != GateRunning {
		t.Errorf("state = %v, want running", g.current())
	}
}

func TestGateState_String(t *testing.T) {
	tests := []struct {
		state GateState
		want  string
	}{
		{GateUnauthorized, "unauthorized"},
		{GateAuthorized, "authorized"},
		{GateRunning, "running"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
