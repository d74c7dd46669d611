package models

import (
	"strings"
	"time"
)

// Event is a calendar event synced from an ICS source.
type Event struct {
	StartTime   time.Time
	EndTime     time.Time
	ID          string // iCal UID, or a generated fallback
	Title       string
	Description string
	Location    string
	Status      string
	SourceID    string // ID of the calendar source this event came from
}

// CalendarSource is a named ICS calendar feed.
type CalendarSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate checks that the source has a name and an http(s) URL.
func (s CalendarSource) Validate() bool {
	if s.Name == "" {
		return false
	}
	return strings.HasPrefix(s.URL, "http://") || strings.HasPrefix(s.URL, "https://")
}
