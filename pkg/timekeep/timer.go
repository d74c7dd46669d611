package timekeep

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a countdown over the same state machine as Stopwatch. The
// displayed value is target minus elapsed, clamped at zero; the first
// crossing to zero invokes the completion callback exactly once.
type Timer struct {
	sw         *Stopwatch
	onComplete func()
	target     time.Duration
	completed  bool
	mu         sync.Mutex
}

// NewTimer creates a stopped countdown timer. A nil clock uses the
// real clock.
func NewTimer(clock clockwork.Clock, onComplete func()) *Timer {
	return &Timer{
		sw:         NewStopwatch(clock),
		onComplete: onComplete,
	}
}

// Start begins a fresh countdown toward target.
func (t *Timer) Start(target time.Duration) {
	t.mu.Lock()
	t.target = target
	t.completed = false
	t.mu.Unlock()

	t.sw.Reset()
	t.sw.Start()
}

// Pause freezes the countdown.
func (t *Timer) Pause() { t.sw.Pause() }

// Resume continues a paused countdown.
func (t *Timer) Resume() { t.sw.Resume() }

// Reset stops the countdown and clears the completed signal.
func (t *Timer) Reset() {
	t.sw.Reset()
	t.mu.Lock()
	t.completed = false
	t.mu.Unlock()
}

// Remaining returns target minus elapsed, clamped at zero.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	target := t.target
	t.mu.Unlock()

	remaining := target - t.sw.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// State returns the underlying run state.
func (t *Timer) State() State { return t.sw.State() }

// Completed reports whether the countdown has reached zero.
func (t *Timer) Completed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// Tick recomputes the countdown and fires the completion callback on
// the first tick at or past zero. Driven once per application tick
// while the timer runs.
func (t *Timer) Tick() {
	if t.sw.State() != Running {
		return
	}
	if t.Remaining() > 0 {
		return
	}

	t.mu.Lock()
	if t.completed {
		t.mu.Unlock()
		return
	}
	t.completed = true
	t.mu.Unlock()

	t.sw.Pause()
	if t.onComplete != nil {
		t.onComplete()
	}
}
