package tzone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid("Local"))
	assert.True(t, Valid(""))
	assert.True(t, Valid("UTC"))
	assert.True(t, Valid("Europe/Berlin"))
	assert.False(t, Valid("Mars/Olympus_Mons"))
}

func TestLocationFallsBackToLocal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Local, Location(""))
	assert.Equal(t, time.Local, Location("Local"))
	assert.Equal(t, time.Local, Location("Mars/Olympus_Mons"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestInConvertsZones(t *testing.T) {
	t.Parallel()

	utcNoon := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tokyo := In(utcNoon, "Asia/Tokyo")
	assert.Equal(t, 21, tokyo.Hour())
	assert.True(t, utcNoon.Equal(tokyo))
}

func TestAvailableStartsWithLocal(t *testing.T) {
	t.Parallel()

	zones := Available()
	assert.Equal(t, LocalName, zones[0])
	for _, z := range zones {
		assert.True(t, Valid(z), "curated zone %q must resolve", z)
	}
}
