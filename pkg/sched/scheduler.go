// Package sched runs daily scheduled actions alongside the alarm
// manager. Schedules fire at most once per wall-clock minute while
// the scheduler is running.
package sched

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/avreline/deskclock/pkg/models"
)

// FireFunc is invoked for each schedule due at the checked minute.
type FireFunc func(s models.Schedule)

// Scheduler owns the schedule list and per-minute dedup state.
type Scheduler struct {
	clock     clockwork.Clock
	onFire    FireFunc
	lastFired map[int]time.Time
	schedules []*models.Schedule
	nextID    int
	running   bool
	mu        sync.Mutex
}

// NewScheduler creates a stopped scheduler. A nil clock uses the
// real one.
func NewScheduler(clock clockwork.Clock, onFire FireFunc) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		clock:     clock,
		onFire:    onFire,
		lastFired: make(map[int]time.Time),
		nextID:    1,
	}
}

// Add registers a schedule and returns its assigned ID.
func (sc *Scheduler) Add(name string, hour, minute int, action models.ScheduleAction, message string) (*models.Schedule, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid schedule time %d:%d", hour, minute)
	}
	if name == "" {
		name = "Schedule"
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	s := &models.Schedule{
		ID:      sc.nextID,
		Name:    name,
		Hour:    hour,
		Minute:  minute,
		Action:  action,
		Message: message,
		Enabled: true,
	}
	sc.nextID++
	sc.schedules = append(sc.schedules, s)
	return s, nil
}

// Remove deletes a schedule. Unknown IDs are a no-op.
func (sc *Scheduler) Remove(id int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for i, s := range sc.schedules {
		if s.ID == id {
			sc.schedules = append(sc.schedules[:i], sc.schedules[i+1:]...)
			delete(sc.lastFired, id)
			return
		}
	}
}

// Enable marks a schedule active.
func (sc *Scheduler) Enable(id int) {
	sc.setEnabled(id, true)
}

// Disable marks a schedule inactive.
func (sc *Scheduler) Disable(id int) {
	sc.setEnabled(id, false)
}

func (sc *Scheduler) setEnabled(id int, enabled bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for _, s := range sc.schedules {
		if s.ID == id {
			s.Enabled = enabled
			return
		}
	}
}

// List returns a snapshot of all schedules.
func (sc *Scheduler) List() []models.Schedule {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	out := make([]models.Schedule, 0, len(sc.schedules))
	for _, s := range sc.schedules {
		out = append(out, *s)
	}
	return out
}

// Restore replaces the schedule list, keeping ID assignment ahead of
// the restored entries.
func (sc *Scheduler) Restore(schedules []models.Schedule) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.schedules = sc.schedules[:0]
	for i := range schedules {
		s := schedules[i]
		sc.schedules = append(sc.schedules, &s)
		if s.ID >= sc.nextID {
			sc.nextID = s.ID + 1
		}
	}
}

// Start begins firing schedules on Check calls.
func (sc *Scheduler) Start() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.running = true
}

// Stop suspends firing without clearing the schedule list.
func (sc *Scheduler) Stop() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.running = false
}

// Running reports whether Check fires schedules.
func (sc *Scheduler) Running() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.running
}

// Check fires every enabled schedule due at now's minute that has not
// already fired this minute. Callbacks run outside the lock.
func (sc *Scheduler) Check(now time.Time) {
	minute := now.Truncate(time.Minute)

	sc.mu.Lock()
	if !sc.running {
		sc.mu.Unlock()
		return
	}

	var due []models.Schedule
	for _, s := range sc.schedules {
		if !s.Enabled || s.Hour != now.Hour() || s.Minute != now.Minute() {
			continue
		}
		if last, ok := sc.lastFired[s.ID]; ok && last.Equal(minute) {
			continue
		}
		sc.lastFired[s.ID] = minute
		due = append(due, *s)
	}
	onFire := sc.onFire
	sc.mu.Unlock()

	if onFire == nil {
		return
	}
	for _, s := range due {
		onFire(s)
	}
}
