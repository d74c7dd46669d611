// Package alarm schedules wall-clock alarms checked once per tick,
// firing each at most once per matching minute.
package alarm

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

// FireFunc receives an alarm that just triggered. It runs on the
// caller's goroutine; slow side effects should be dispatched
// asynchronously by the callback itself.
type FireFunc func(models.Alarm)

// Manager owns the alarm list. All mutation happens through its
// methods; Check is driven by the application tick loop.
type Manager struct {
	clock     clockwork.Clock
	onFire    FireFunc
	lastFired map[int64]time.Time // alarm ID -> minute it last fired
	alarms    []*models.Alarm
	nextID    int64
	mu        sync.RWMutex
}

// NewManager creates a Manager firing through onFire. A nil clock
// uses the real clock.
func NewManager(clock clockwork.Clock, onFire FireFunc) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		clock:     clock,
		onFire:    onFire,
		lastFired: make(map[int64]time.Time),
		nextID:    1,
	}
}

// Add creates a new enabled alarm and returns it. Duplicate trigger
// times are allowed.
func (m *Manager) Add(hour, minute int, label string, sound models.Sound, repeat bool) (models.Alarm, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return models.Alarm{}, fmt.Errorf("alarm time %02d:%02d out of range", hour, minute)
	}
	if label == "" {
		label = "Alarm"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := &models.Alarm{
		ID:      m.nextID,
		Hour:    hour,
		Minute:  minute,
		Label:   label,
		Sound:   sound,
		Enabled: true,
		Repeat:  repeat,
	}
	m.nextID++
	m.alarms = append(m.alarms, a)

	log.Info().Int64("id", a.ID).Str("time", a.TimeString()).Str("label", label).Msg("alarm added")
	return *a, nil
}

// Remove deletes the alarm with the given ID. Unknown IDs are a no-op.
func (m *Manager) Remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.alarms {
		if a.ID == id {
			m.alarms = append(m.alarms[:i], m.alarms[i+1:]...)
			delete(m.lastFired, id)
			log.Info().Int64("id", id).Msg("alarm removed")
			return
		}
	}
}

// Toggle flips the enabled flag of the alarm with the given ID and
// clears any pending snooze. Unknown IDs are a no-op.
func (m *Manager) Toggle(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.alarms {
		if a.ID == id {
			a.Enabled = !a.Enabled
			a.SnoozedUntil = nil
			log.Info().Int64("id", id).Bool("enabled", a.Enabled).Msg("alarm toggled")
			return
		}
	}
}

// Snooze re-arms the alarm to fire again after d, re-enabling it if
// the fire had disabled it.
func (m *Manager) Snooze(id int64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.alarms {
		if a.ID == id {
			until := m.clock.Now().Add(d)
			a.SnoozedUntil = &until
			a.Enabled = true
			log.Info().Int64("id", id).Time("until", until).Msg("alarm snoozed")
			return
		}
	}
}

// List returns a snapshot of all alarms in creation order.
func (m *Manager) List() []models.Alarm {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Alarm, 0, len(m.alarms))
	for _, a := range m.alarms {
		out = append(out, *a)
	}
	return out
}

// Get returns the alarm with the given ID.
func (m *Manager) Get(id int64) (models.Alarm, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.alarms {
		if a.ID == id {
			return *a, true
		}
	}
	return models.Alarm{}, false
}

// Restore replaces the alarm list with a persisted snapshot, keeping
// the ID sequence ahead of every restored ID.
func (m *Manager) Restore(alarms []models.Alarm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alarms = m.alarms[:0]
	m.lastFired = make(map[int64]time.Time)
	for i := range alarms {
		a := alarms[i]
		m.alarms = append(m.alarms, &a)
		if a.ID >= m.nextID {
			m.nextID = a.ID + 1
		}
	}
}

// Check fires every enabled alarm whose trigger time matches now's
// hour and minute, at most once per calendar minute no matter how
// many ticks land in that minute. The fired mark is set before the
// callback runs so a failing side effect cannot cause a refire.
// Non-repeating alarms are disabled after firing.
func (m *Manager) Check(now time.Time) {
	minute := models.RoundToMinute(now)

	var fired []models.Alarm

	m.mu.Lock()
	for _, a := range m.alarms {
		// A snooze whose minute passed without a check must not keep
		// silencing the alarm; drop it and fall back to HH:MM.
		if a.SnoozedUntil != nil && minute.After(models.RoundToMinute(*a.SnoozedUntil)) {
			a.SnoozedUntil = nil
		}
		if !a.Enabled || !a.Matches(now) {
			continue
		}
		if last, ok := m.lastFired[a.ID]; ok && last.Equal(minute) {
			continue
		}
		m.lastFired[a.ID] = minute
		a.SnoozedUntil = nil
		if !a.Repeat {
			a.Enabled = false
		}
		fired = append(fired, *a)
	}
	m.mu.Unlock()

	for _, a := range fired {
		log.Info().Int64("id", a.ID).Str("label", a.Label).Msg("alarm fired")
		if m.onFire != nil {
			m.onFire(a)
		}
	}
}
