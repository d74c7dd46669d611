package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/avreline/deskclock/pkg/models"
)

// The alarm tones are synthesized at startup rather than shipped as
// asset files: a few hundred milliseconds of 16-bit mono PCM each.
const (
	toneSampleRate = 44100
	toneAmplitude  = 0.4
)

var (
	toneCache   map[models.Sound][]byte
	toneCacheMu sync.Mutex
)

// ToneWAV returns the WAV bytes for the named tone, synthesizing and
// caching on first use. Unknown sounds get the default tone.
func ToneWAV(sound models.Sound) []byte {
	toneCacheMu.Lock()
	defer toneCacheMu.Unlock()

	if toneCache == nil {
		toneCache = make(map[models.Sound][]byte)
	}
	if wav, ok := toneCache[sound]; ok {
		return wav
	}

	var samples []int16
	switch sound {
	case models.SoundBeep:
		samples = squareTone(1000, 200)
	case models.SoundChime:
		samples = append(sineTone(880, 300), sineTone(660, 400)...)
	case models.SoundBell:
		samples = decayingTone(523.25, 900)
	default:
		samples = append(sineTone(880, 400), silence(200)...)
	}

	wav := encodeWAV(samples)
	toneCache[sound] = wav
	return wav
}

func sineTone(freq float64, millis int) []int16 {
	n := toneSampleRate * millis / 1000
	samples := make([]int16, n)
	for i := range samples {
		v := math.Sin(2 * math.Pi * freq * float64(i) / toneSampleRate)
		samples[i] = int16(v * toneAmplitude * math.MaxInt16)
	}
	return samples
}

func squareTone(freq float64, millis int) []int16 {
	n := toneSampleRate * millis / 1000
	samples := make([]int16, n)
	for i := range samples {
		v := math.Sin(2 * math.Pi * freq * float64(i) / toneSampleRate)
		if v >= 0 {
			samples[i] = int16(toneAmplitude * math.MaxInt16)
		} else {
			samples[i] = int16(-toneAmplitude * math.MaxInt16)
		}
	}
	return samples
}

// decayingTone is a sine with an exponential envelope and a second
// harmonic, a rough bell strike.
func decayingTone(freq float64, millis int) []int16 {
	n := toneSampleRate * millis / 1000
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / toneSampleRate
		envelope := math.Exp(-3 * t)
		v := math.Sin(2*math.Pi*freq*t) + 0.5*math.Sin(4*math.Pi*freq*t)
		samples[i] = int16(v / 1.5 * envelope * toneAmplitude * math.MaxInt16)
	}
	return samples
}

func silence(millis int) []int16 {
	return make([]int16, toneSampleRate*millis/1000)
}

// encodeWAV wraps mono 16-bit PCM samples in a RIFF/WAVE container.
func encodeWAV(samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	var buf bytes.Buffer

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate*2)) // byte rate
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))                // block align
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))               // bits per sample

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
