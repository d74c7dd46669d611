package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avreline/deskclock/pkg/models"
)

func TestToneWAVIsParseable(t *testing.T) {
	t.Parallel()

	for _, sound := range []models.Sound{
		models.SoundDefault, models.SoundBeep, models.SoundChime, models.SoundBell,
	} {
		wav := ToneWAV(sound)
		require.NotEmpty(t, wav, "tone %q", sound)

		format, data, err := parseWAV(wav)
		require.NoError(t, err, "tone %q", sound)
		assert.Equal(t, toneSampleRate, format.SampleRate)
		assert.Equal(t, 1, format.Channels)
		assert.Equal(t, 16, format.BitDepth)
		assert.NotEmpty(t, data)
	}
}

func TestToneWAVCaches(t *testing.T) {
	t.Parallel()

	first := ToneWAV(models.SoundBeep)
	second := ToneWAV(models.SoundBeep)
	assert.Same(t, &first[0], &second[0], "repeated lookups reuse the cached buffer")
}

func TestUnknownSoundGetsDefaultTone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ToneWAV(models.SoundDefault), ToneWAV(models.Sound("klaxon")))
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, _, err := parseWAV([]byte("definitely not a wav file"))
	require.Error(t, err)

	_, _, err = parseWAV(nil)
	require.Error(t, err)
}

func TestStopIsIdempotentAndNilSafe(t *testing.T) {
	t.Parallel()

	var p *Player
	p.Stop()

	p = &Player{stopChan: make(chan struct{})}
	p.Stop()
	p.Stop()
}
