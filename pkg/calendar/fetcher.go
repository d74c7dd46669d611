package calendar

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

// syncWindow is how far ahead of now events are kept.
const syncWindow = 24 * time.Hour

// FetchEvents downloads and parses one ICS feed, returning the events
// that fall inside the sync window relative to now.
func FetchEvents(source models.CalendarSource, now time.Time) ([]models.Event, error) {
	resp, err := http.Get(source.URL)
	if err != nil {
		return nil, fmt.Errorf("calendar request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close calendar response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar response: %w", err)
	}

	events, err := parseICS(string(body), now)
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].SourceID = source.ID
		// Fallback for events without an iCal UID
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
	}
	return events, nil
}

// parseICS decodes ICS text and collects the events within the sync
// window, expanding recurrences and dropping cancelled, all-day and
// duplicate entries.
func parseICS(body string, now time.Time) ([]models.Event, error) {
	if err := validateICS(body); err != nil {
		return nil, err
	}

	decoder := ical.NewDecoder(strings.NewReader(body))
	until := now.Add(syncWindow)

	var events []models.Event
	seenIDs := make(map[string]bool)
	seenKeys := make(map[string]bool) // title + start time

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			event := parseEvent(comp)

			if rruleProp := comp.Props.Get(ical.PropRecurrenceRule); rruleProp != nil {
				for _, instance := range expandRecurrence(event, rruleProp.Value, now, until) {
					if includeEvent(instance, now, until) && !duplicate(instance, seenIDs, seenKeys) {
						events = append(events, instance)
					}
				}
				continue
			}

			if includeEvent(event, now, until) && !duplicate(event, seenIDs, seenKeys) {
				events = append(events, event)
			}
		}
	}

	return events, nil
}

func validateICS(body string) error {
	trimmed := strings.TrimSpace(body)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "<!DOCTYPE") || strings.HasPrefix(upper, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data, check the feed URL")
	}
	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		return fmt.Errorf("invalid iCalendar data, expected BEGIN:VCALENDAR")
	}
	return nil
}

func duplicate(event models.Event, seenIDs, seenKeys map[string]bool) bool {
	if event.ID != "" && seenIDs[event.ID] {
		return true
	}
	key := event.Title + "|" + event.StartTime.Format(time.RFC3339)
	if seenKeys[key] {
		return true
	}
	seenIDs[event.ID] = true
	seenKeys[key] = true
	return false
}
