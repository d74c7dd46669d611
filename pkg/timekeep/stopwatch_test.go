package timekeep

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwatchAccumulatesAcrossPauses(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)

	assert.Equal(t, Stopped, sw.State())
	assert.Zero(t, sw.Elapsed())

	sw.Start()
	clock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, sw.Elapsed())

	sw.Pause()
	clock.Advance(10 * time.Second)
	assert.Equal(t, 3*time.Second, sw.Elapsed(), "paused time must not count")

	sw.Resume()
	clock.Advance(2 * time.Second)
	assert.Equal(t, 5*time.Second, sw.Elapsed())
}

func TestStopwatchStartWhileRunningIsNoOp(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)

	sw.Start()
	clock.Advance(4 * time.Second)
	sw.Start()
	assert.Equal(t, 4*time.Second, sw.Elapsed())
}

func TestStopwatchResetClearsEverything(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)

	sw.Start()
	clock.Advance(90 * time.Second)
	sw.Lap()
	sw.Reset()

	assert.Equal(t, Stopped, sw.State())
	assert.Zero(t, sw.Elapsed())
	assert.Empty(t, sw.Laps())
}

func TestStopwatchLapRecordsSplits(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)

	sw.Lap()
	assert.Empty(t, sw.Laps(), "lap while stopped is a no-op")

	sw.Start()
	clock.Advance(time.Second)
	sw.Lap()
	clock.Advance(2 * time.Second)
	sw.Lap()

	laps := sw.Laps()
	require.Len(t, laps, 2)
	assert.Equal(t, time.Second, laps[0])
	assert.Equal(t, 3*time.Second, laps[1])
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00.00", FormatElapsed(0))
	assert.Equal(t, "00:05.50", FormatElapsed(5*time.Second+500*time.Millisecond))
	assert.Equal(t, "02:03.00", FormatElapsed(2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00.00", FormatElapsed(-time.Second))
}

func TestTimerCompletesExactlyOnce(t *testing.T) {
	t.Parallel()

	completions := 0
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	timer := NewTimer(clock, func() { completions++ })

	timer.Start(5 * time.Second)
	assert.Equal(t, 5*time.Second, timer.Remaining())

	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		timer.Tick()
	}

	assert.Equal(t, 1, completions)
	assert.True(t, timer.Completed())
	assert.Zero(t, timer.Remaining(), "remaining clamps at zero")
	assert.Equal(t, Paused, timer.State())
}

func TestTimerPauseFreezesCountdown(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	timer := NewTimer(clock, nil)

	timer.Start(time.Minute)
	clock.Advance(20 * time.Second)
	timer.Pause()
	clock.Advance(time.Hour)
	timer.Tick()

	assert.Equal(t, 40*time.Second, timer.Remaining())
	assert.False(t, timer.Completed())
}

func TestTimerRestartAfterCompletion(t *testing.T) {
	t.Parallel()

	completions := 0
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	timer := NewTimer(clock, func() { completions++ })

	timer.Start(time.Second)
	clock.Advance(time.Second)
	timer.Tick()
	require.Equal(t, 1, completions)

	timer.Start(2 * time.Second)
	assert.False(t, timer.Completed())
	clock.Advance(2 * time.Second)
	timer.Tick()
	assert.Equal(t, 2, completions)
}
