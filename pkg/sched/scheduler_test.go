package sched

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avreline/deskclock/pkg/models"
)

func TestCheckRequiresRunningScheduler(t *testing.T) {
	t.Parallel()

	fired := 0
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	sc := NewScheduler(clock, func(models.Schedule) { fired++ })

	_, err := sc.Add("lunch", 12, 0, models.ActionNotification, "time for lunch")
	require.NoError(t, err)

	sc.Check(clock.Now())
	assert.Zero(t, fired, "stopped scheduler must not fire")

	sc.Start()
	assert.True(t, sc.Running())
	sc.Check(clock.Now())
	assert.Equal(t, 1, fired)

	sc.Stop()
	assert.False(t, sc.Running())
}

func TestCheckFiresOncePerMinute(t *testing.T) {
	t.Parallel()

	fired := 0
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 11, 59, 30, 0, time.UTC))
	sc := NewScheduler(clock, func(models.Schedule) { fired++ })
	sc.Start()

	_, err := sc.Add("lunch", 12, 0, models.ActionSound, "")
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		sc.Check(clock.Now())
		clock.Advance(time.Second)
	}

	assert.Equal(t, 1, fired)
}

func TestDisabledScheduleDoesNotFire(t *testing.T) {
	t.Parallel()

	fired := 0
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	sc := NewScheduler(clock, func(models.Schedule) { fired++ })
	sc.Start()

	s, err := sc.Add("lunch", 12, 0, models.ActionVoice, "lunch")
	require.NoError(t, err)
	sc.Disable(s.ID)

	sc.Check(clock.Now())
	assert.Zero(t, fired)

	sc.Enable(s.ID)
	sc.Check(clock.Now())
	assert.Equal(t, 1, fired)
}

func TestAddValidatesTime(t *testing.T) {
	t.Parallel()

	sc := NewScheduler(nil, nil)

	_, err := sc.Add("bad", 25, 0, models.ActionNotification, "")
	require.Error(t, err)
	_, err = sc.Add("bad", 12, 61, models.ActionNotification, "")
	require.Error(t, err)
	assert.Empty(t, sc.List())

	s, err := sc.Add("", 8, 15, models.ActionNotification, "")
	require.NoError(t, err)
	assert.Equal(t, "Schedule", s.Name)
	assert.Equal(t, "08:15", s.TimeString())
}

func TestRemoveAndRestore(t *testing.T) {
	t.Parallel()

	sc := NewScheduler(nil, nil)
	s, err := sc.Add("one", 9, 0, models.ActionNotification, "")
	require.NoError(t, err)

	sc.Remove(s.ID)
	sc.Remove(42)
	assert.Empty(t, sc.List())

	sc.Restore([]models.Schedule{
		{ID: 5, Name: "restored", Hour: 10, Minute: 30, Action: models.ActionSound, Enabled: true},
	})
	require.Len(t, sc.List(), 1)

	next, err := sc.Add("after", 11, 0, models.ActionVoice, "")
	require.NoError(t, err)
	assert.Equal(t, 6, next.ID, "ID sequence stays ahead of restored entries")
}
