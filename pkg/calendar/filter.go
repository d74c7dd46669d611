package calendar

import (
	"time"

	"github.com/avreline/deskclock/pkg/models"
)

func includeEvent(event models.Event, now, until time.Time) bool {
	if event.StartTime.IsZero() || event.EndTime.IsZero() {
		return false
	}
	if event.Status == "CANCELLED" {
		return false
	}
	if isAllDay(event) {
		return false
	}
	// Keep events overlapping the window
	return event.StartTime.Before(until) && event.EndTime.After(now)
}

// isAllDay treats events spanning a day boundary with a duration of
// at least 24 hours as all-day blocks, which the clock does not show.
func isAllDay(event models.Event) bool {
	startDate := event.StartTime.Format("2006-01-02")
	endDate := event.EndTime.Format("2006-01-02")
	return startDate != endDate && event.EndTime.Sub(event.StartTime) >= 24*time.Hour
}
