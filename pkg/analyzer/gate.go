package analyzer

import (
	"errors"
	"sync"
)

// GateState tracks pipeline authorization. Frame analysis may only run after
// an external authorization event (camera access granted), so the gate moves
// Unauthorized -> Authorized -> Running.
type GateState int

const (
	// GateUnauthorized is the initial state; Run is refused.
	GateUnauthorized GateState = iota
	// GateAuthorized means the authorization event arrived; Run may start.
	GateAuthorized
	// GateRunning means the analysis loop is active.
	GateRunning
)

// String returns a human-readable state name.
func (s GateState) String() string {
	switch s {
	case GateAuthorized:
		return "authorized"
	case GateRunning:
		return "running"
	default:
		return "unauthorized"
	}
}

// Gate errors.
var (
	ErrNotAuthorized  = errors.New("analyzer: not authorized")
	ErrAlreadyRunning = errors.New("analyzer: already running")
)

// gate is the initialization state machine guarding the analysis loop.
type gate struct {
	mu    sync.Mutex
	state GateState
}

// authorize records the external authorization event. Idempotent; it never
// demotes a running gate.
func (g *gate) authorize() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateUnauthorized {
		g.state = GateAuthorized
	}
}

// start moves Authorized -> Running.
func (g *gate) start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case GateUnauthorized:
		return ErrNotAuthorized
	case GateRunning:
		return ErrAlreadyRunning
	}
	g.state = GateRunning
	return nil
}

// stop moves Running -> Authorized so the loop can be restarted.
func (g *gate) stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateRunning {
		g.state = GateAuthorized
	}
}

// current returns the gate state.
func (g *gate) current() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
