package models

import "fmt"

// ScheduleAction is what a scheduler entry does when it fires.
type ScheduleAction string

const (
	ActionNotification ScheduleAction = "notification"
	ActionSound        ScheduleAction = "sound"
	ActionVoice        ScheduleAction = "voice"
)

// Schedule is a daily scheduled action at a fixed HH:MM.
type Schedule struct {
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Action  ScheduleAction `json:"action"`
	ID      int            `json:"id"`
	Hour    int            `json:"hour"`
	Minute  int            `json:"minute"`
	Enabled bool           `json:"enabled"`
}

// TimeString formats the schedule trigger time as HH:MM.
func (s Schedule) TimeString() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}
