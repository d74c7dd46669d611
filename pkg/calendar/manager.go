// Package calendar syncs upcoming events from ICS calendar feeds for
// the clock's calendar panel and companion API.
package calendar

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

// Manager holds the configured sources and the last synced events.
type Manager struct {
	clock   clockwork.Clock
	fetch   func(models.CalendarSource, time.Time) ([]models.Event, error)
	events  []models.Event
	sources []models.CalendarSource
	enabled bool
	mu      sync.RWMutex
}

// NewManager creates a disabled manager with no sources. A nil clock
// uses the real clock.
func NewManager(clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		clock: clock,
		fetch: FetchEvents,
	}
}

// SetEnabled turns calendar syncing on or off.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// Enabled reports whether calendar syncing is on.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// SetSources replaces the configured feeds.
func (m *Manager) SetSources(sources []models.CalendarSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append([]models.CalendarSource(nil), sources...)
}

// Sources returns a copy of the configured feeds.
func (m *Manager) Sources() []models.CalendarSource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.CalendarSource(nil), m.sources...)
}

// Sync fetches every valid source and replaces the event list with
// the merged result sorted by start time. Individual source failures
// log and are skipped; Sync itself never fails.
func (m *Manager) Sync() {
	m.mu.RLock()
	enabled := m.enabled
	sources := append([]models.CalendarSource(nil), m.sources...)
	m.mu.RUnlock()

	if !enabled {
		return
	}

	now := m.clock.Now()
	var merged []models.Event
	for _, source := range sources {
		if !source.Validate() {
			continue
		}
		events, err := m.fetch(source, now)
		if err != nil {
			log.Warn().Err(err).Str("source", source.Name).Msg("calendar sync failed")
			continue
		}
		merged = append(merged, events...)
		log.Info().Int("events", len(events)).Str("source", source.Name).Msg("calendar synced")
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartTime.Before(merged[j].StartTime)
	})

	m.mu.Lock()
	m.events = merged
	m.mu.Unlock()
}

// Upcoming returns synced events that have not ended yet.
func (m *Manager) Upcoming() []models.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.clock.Now()
	out := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		if e.EndTime.After(now) {
			out = append(out, e)
		}
	}
	return out
}

// Next returns the first upcoming event, or nil when there is none.
func (m *Manager) Next() *models.Event {
	upcoming := m.Upcoming()
	if len(upcoming) == 0 {
		return nil
	}
	next := upcoming[0]
	return &next
}
