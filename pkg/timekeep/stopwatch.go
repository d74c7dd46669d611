// Package timekeep implements the stopwatch and countdown timer state
// machines driven by the application tick loop.
package timekeep

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// State is the stopwatch/timer run state.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Stopwatch accumulates elapsed time across start/pause cycles and
// records lap splits.
type Stopwatch struct {
	clock       clockwork.Clock
	startedAt   time.Time
	accumulated time.Duration
	laps        []time.Duration
	state       State
	mu          sync.Mutex
}

// NewStopwatch creates a stopped stopwatch. A nil clock uses the real
// clock.
func NewStopwatch(clock clockwork.Clock) *Stopwatch {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Stopwatch{clock: clock}
}

// Start begins timing from zero, or resumes when paused. Starting a
// running stopwatch is a no-op.
func (sw *Stopwatch) Start() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.state == Running {
		return
	}
	sw.startedAt = sw.clock.Now()
	sw.state = Running
}

// Pause freezes the elapsed time. Only valid while running.
func (sw *Stopwatch) Pause() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.state != Running {
		return
	}
	sw.accumulated += sw.clock.Now().Sub(sw.startedAt)
	sw.state = Paused
}

// Resume continues timing after a pause.
func (sw *Stopwatch) Resume() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.state != Paused {
		return
	}
	sw.startedAt = sw.clock.Now()
	sw.state = Running
}

// Reset returns the stopwatch to zero from any state and clears laps.
func (sw *Stopwatch) Reset() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.state = Stopped
	sw.accumulated = 0
	sw.laps = nil
}

// Lap records the current elapsed time as a split. No-op unless
// running.
func (sw *Stopwatch) Lap() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.state != Running {
		return
	}
	sw.laps = append(sw.laps, sw.elapsedLocked())
}

// Laps returns a copy of the recorded splits.
func (sw *Stopwatch) Laps() []time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return append([]time.Duration(nil), sw.laps...)
}

// Elapsed returns the accumulated running duration. It is monotone
// non-decreasing while running and frozen while paused.
func (sw *Stopwatch) Elapsed() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.elapsedLocked()
}

func (sw *Stopwatch) elapsedLocked() time.Duration {
	if sw.state == Running {
		return sw.accumulated + sw.clock.Now().Sub(sw.startedAt)
	}
	return sw.accumulated
}

// State returns the current run state.
func (sw *Stopwatch) State() State {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.state
}

// FormatElapsed renders a duration as MM:SS.cc, the stopwatch display
// format.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := d % time.Minute
	return fmt.Sprintf("%02d:%05.2f", minutes, seconds.Seconds())
}
