package face

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 15, 15, 15, 42, 0, time.UTC)

func TestDigitalFormats(t *testing.T) {
	t.Parallel()

	f := digitalFace{}

	assert.Equal(t, "15:15:42", f.FormatTime(testTime, Options{Use24Hour: true, ShowSeconds: true}))
	assert.Equal(t, "15:15", f.FormatTime(testTime, Options{Use24Hour: true}))
	assert.Equal(t, "03:15:42 PM", f.FormatTime(testTime, Options{ShowSeconds: true}))
	assert.Equal(t, "03:15 PM", f.FormatTime(testTime, Options{}))
}

func TestTextSpellsOutTheTime(t *testing.T) {
	t.Parallel()

	f := textFace{}
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		want   string
		hour   int
		minute int
		use24  bool
	}{
		{"It's three o'clock PM", 15, 0, false},
		{"It's quarter past three PM", 15, 15, false},
		{"It's half past three PM", 15, 30, false},
		{"It's quarter to four PM", 15, 45, false},
		{"It's ten past three PM", 15, 10, false},
		{"It's twenty-five to four PM", 15, 35, false},
		{"It's quarter to one PM", 12, 45, false},
		{"It's eleven o'clock AM", 11, 0, false},
		{"It's twelve o'clock AM", 0, 0, false},
		{"It's fifteen o'clock", 15, 0, true},
		{"It's quarter to zero", 23, 45, true},
	}

	for _, tc := range tests {
		got := f.FormatTime(at(tc.hour, tc.minute), Options{Use24Hour: tc.use24})
		assert.Equal(t, tc.want, got)
	}
}

func TestBinaryCaption(t *testing.T) {
	t.Parallel()

	f := binaryFace{}
	assert.Equal(t, "15:15:42 (Binary)", f.FormatTime(testTime, Options{ShowSeconds: true}))
	assert.Equal(t, "15:15 (Binary)", f.FormatTime(testTime, Options{}))
}

func TestBinaryRows(t *testing.T) {
	t.Parallel()

	// 12:34 -> digit columns 1,2,3,4
	rows := BinaryRows(time.Date(2025, 6, 15, 12, 34, 0, 0, time.UTC), false)
	require.Len(t, rows, 6)

	// Bottom row is the least significant bit of each digit
	assert.Equal(t, "1 0 1 0", rows[5])
	// Digit 4 sets only bit 2
	assert.Equal(t, "0 0 0 1", rows[3])
	// Top rows are all zero for digits < 16
	assert.Equal(t, "0 0 0 0", rows[0])

	// With seconds each row has six cells separated by spaces
	withSeconds := BinaryRows(time.Date(2025, 6, 15, 12, 34, 56, 0, time.UTC), true)
	require.Len(t, withSeconds, 6)
	assert.Len(t, withSeconds[0], 11)
}

func TestManagerCyclesStyles(t *testing.T) {
	t.Parallel()

	m := NewManager()
	assert.Equal(t, StyleDigital, m.CurrentName())
	assert.ElementsMatch(t, []string{StyleDigital, StyleAnalog, StyleBinary, StyleText}, m.Available())

	seen := map[string]bool{m.CurrentName(): true}
	for i := 0; i < 3; i++ {
		seen[m.Next()] = true
	}
	assert.Len(t, seen, 4, "Next visits every style")
	assert.Equal(t, StyleDigital, m.Next(), "cycle wraps around")
}

func TestManagerUnknownStyleFallsBackToDigital(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.SetCurrent("holographic")
	assert.Equal(t, StyleDigital, m.Current().Name())
}
