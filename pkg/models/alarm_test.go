package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlarmTime(t *testing.T) {
	t.Parallel()

	hour, minute, err := ParseAlarmTime("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = ParseAlarmTime("0:05")
	require.NoError(t, err)
	assert.Equal(t, 0, hour)
	assert.Equal(t, 5, minute)

	for _, bad := range []string{"", "24:00", "12:60", "abc", "12", "-1:30"} {
		_, _, err := ParseAlarmTime(bad)
		assert.Error(t, err, "%q must be rejected", bad)
	}
}

func TestParseSoundFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SoundBeep, ParseSound("beep"))
	assert.Equal(t, SoundBell, ParseSound("bell"))
	assert.Equal(t, SoundDefault, ParseSound("klaxon"))
	assert.Equal(t, SoundDefault, ParseSound(""))
}

func TestAlarmMatches(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 7, Minute: 30}
	assert.True(t, a.Matches(time.Date(2025, 6, 15, 7, 30, 45, 0, time.UTC)))
	assert.False(t, a.Matches(time.Date(2025, 6, 15, 7, 31, 0, 0, time.UTC)))

	snoozed := time.Date(2025, 6, 15, 7, 35, 0, 0, time.UTC)
	a.SnoozedUntil = &snoozed
	assert.False(t, a.Matches(time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)), "snooze replaces the configured time")
	assert.True(t, a.Matches(time.Date(2025, 6, 15, 7, 35, 59, 0, time.UTC)))
}

func TestCalendarSourceValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, CalendarSource{ID: "1", Name: "Work", URL: "https://example.com/a.ics"}.Validate())
	assert.False(t, CalendarSource{Name: "Work"}.Validate())
	assert.False(t, CalendarSource{Name: "Work", URL: "ftp://example.com"}.Validate())
}
