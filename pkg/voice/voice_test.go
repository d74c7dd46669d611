package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnounceTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 15, 15, 7, 0, 0, time.UTC)
	assert.Equal(t, "The time is 15 07", AnnounceTime(at, true))
	assert.Equal(t, "The time is 3 07 PM", AnnounceTime(at, false))
}

func TestAnnounceHour(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "It's 15 hundred hours", AnnounceHour(at, true))
	assert.Equal(t, "It's 3 PM", AnnounceHour(at, false))
}

func TestSpeakEmptyOrDisabledIsNoOp(t *testing.T) {
	t.Parallel()

	a := &SystemAnnouncer{}
	assert.False(t, a.Enabled())
	a.Speak("nothing happens")
	a.Speak("")
}
