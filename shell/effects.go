package shell

import (
	"sync"
	"time"
)

// EffectKind names a deferred UI side effect requested by a command.
type EffectKind int

const (
	// EffectExit asks the front-end to end the session (browser reload /
	// SSH disconnect).
	EffectExit EffectKind = iota
	// EffectMatrixOn and EffectMatrixOff bracket the matrix rain overlay.
	EffectMatrixOn
	EffectMatrixOff
)

// Effect is a scheduled side effect: fire Kind at At.
type Effect struct {
	Kind EffectKind
	At   time.Time
}

// EffectScheduler replaces the original's nested ad-hoc timers with one
// ordered list of pending effects. Commands schedule, front-ends poll Due;
// nothing here blocks input processing. Tests drive it with a fake clock.
type EffectScheduler struct {
	mu      sync.Mutex
	clock   func() time.Time
	pending []Effect
}

func NewEffectScheduler(clock func() time.Time) *EffectScheduler {
	return &EffectScheduler{clock: clock}
}

// Schedule queues kind to fire after delay.
func (e *EffectScheduler) Schedule(delay time.Duration, kind EffectKind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	at := e.clock().Add(delay)
	idx := len(e.pending)
	for idx > 0 && e.pending[idx-1].At.After(at) {
		idx--
	}
	e.pending = append(e.pending, Effect{})
	copy(e.pending[idx+1:], e.pending[idx:])
	e.pending[idx] = Effect{Kind: kind, At: at}
}

// Due pops and returns every effect whose time has come, in firing order.
func (e *EffectScheduler) Due() []Effect {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock()
	cut := 0
	for cut < len(e.pending) && !e.pending[cut].At.After(now) {
		cut++
	}
	if cut == 0 {
		return nil
	}
	due := make([]Effect, cut)
	copy(due, e.pending[:cut])
	e.pending = e.pending[cut:]
	return due
}

// Cancel removes the earliest pending effect of the given kind and reports
// whether one was found.
func (e *EffectScheduler) Cancel(kind EffectKind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, eff := range e.pending {
		if eff.Kind == kind {
			e.pending = append(e.pending[:i], e.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Next reports the firing time of the earliest pending effect.
func (e *EffectScheduler) Next() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return time.Time{}, false
	}
	return e.pending[0].At, true
}

func (e *EffectScheduler) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}
