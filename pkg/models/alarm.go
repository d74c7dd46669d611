package models

import (
	"fmt"
	"time"
)

// Sound names a built-in alarm tone.
type Sound string

const (
	SoundDefault Sound = "default"
	SoundBeep    Sound = "beep"
	SoundChime   Sound = "chime"
	SoundBell    Sound = "bell"
)

// ParseSound maps a stored sound name to a Sound, falling back to the
// default tone for unknown names.
func ParseSound(name string) Sound {
	switch Sound(name) {
	case SoundBeep, SoundChime, SoundBell, SoundDefault:
		return Sound(name)
	default:
		return SoundDefault
	}
}

// Alarm is a daily wall-clock alarm. SnoozedUntil, when set, replaces
// the configured trigger time for the next fire.
type Alarm struct {
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
	Label        string     `json:"label"`
	Sound        Sound      `json:"sound"`
	ID           int64      `json:"id"`
	Hour         int        `json:"hour"`
	Minute       int        `json:"minute"`
	Enabled      bool       `json:"enabled"`
	Repeat       bool       `json:"repeat"`
}

// TimeString renders the trigger time as HH:MM.
func (a Alarm) TimeString() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// Matches reports whether the alarm is due at now's minute. A snoozed
// alarm matches its snooze minute instead of the configured time.
func (a Alarm) Matches(now time.Time) bool {
	if a.SnoozedUntil != nil {
		return RoundToMinute(now).Equal(RoundToMinute(*a.SnoozedUntil))
	}
	return now.Hour() == a.Hour && now.Minute() == a.Minute
}

// ParseAlarmTime parses an "HH:MM" string into hour and minute.
func ParseAlarmTime(s string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return hour, minute, nil
}

// RoundToMinute truncates t to its calendar minute.
func RoundToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
