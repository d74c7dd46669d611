// Package audio plays the built-in alarm tones through oto. Playback
// failures degrade to silence; the alarm still counts as fired.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages one looping tone playback with cancellation.
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// wavFormat holds WAV file format information.
type wavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// initAudioContext initializes the global audio context once.
func initAudioContext(format *wavFormat) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize audio context, sounds disabled")
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Debug().Msg("audio context initialized")
	})
}

// Play loops the named tone until Stop is called. Returns nil when
// no audio backend is available.
func Play(sound models.Sound) *Player {
	wavData := ToneWAV(sound)

	format, audioData, err := parseWAV(wavData)
	if err != nil {
		log.Warn().Err(err).Str("sound", string(sound)).Msg("failed to parse tone data")
		return nil
	}

	initAudioContext(format)

	if !audioCtxReady || globalAudioCtx == nil {
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
	}

	go p.playLoop(audioData)

	return p
}

func (p *Player) playLoop(audioData []byte) {
	// Loop the tone until stopped
	for {
		p.player = globalAudioCtx.NewPlayer(bytes.NewReader(audioData))
		p.player.Play()

		for p.player.IsPlaying() {
			select {
			case <-p.stopChan:
				p.player.Pause()
				if err := p.player.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close audio player")
				}
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		if err := p.player.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close audio player")
		}

		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

// Stop ends the playback loop. Safe on a nil Player and safe to call
// more than once.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)

		if p.player != nil {
			p.player.Pause()
		}
	}
}

// parseWAV parses a WAV file and returns the format and audio data.
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	riff := make([]byte, 4)
	if _, err := reader.Read(riff); err != nil {
		return nil, nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}
	if string(riff) != "RIFF" {
		return nil, nil, fmt.Errorf("not a RIFF file")
	}

	// Skip file size
	if _, err := reader.Seek(4, io.SeekCurrent); err != nil {
		return nil, nil, fmt.Errorf("truncated WAV header: %w", err)
	}

	wave := make([]byte, 4)
	if _, err := reader.Read(wave); err != nil {
		return nil, nil, fmt.Errorf("failed to read WAVE header: %w", err)
	}

	format := &wavFormat{}
	var dataStart int64
	var dataSize uint32

	for {
		chunkID := make([]byte, 4)
		if _, err := reader.Read(chunkID); err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("failed to read chunk id: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, fmt.Errorf("failed to read chunk size: %w", err)
		}

		switch string(chunkID) {
		case "fmt ":
			var audioFormat uint16
			if err := binary.Read(reader, binary.LittleEndian, &audioFormat); err != nil {
				return nil, nil, fmt.Errorf("failed to read audio format: %w", err)
			}

			var numChannels uint16
			if err := binary.Read(reader, binary.LittleEndian, &numChannels); err != nil {
				return nil, nil, fmt.Errorf("failed to read channel count: %w", err)
			}
			format.Channels = int(numChannels)

			var sampleRate uint32
			if err := binary.Read(reader, binary.LittleEndian, &sampleRate); err != nil {
				return nil, nil, fmt.Errorf("failed to read sample rate: %w", err)
			}
			format.SampleRate = int(sampleRate)

			// Skip byte rate and block align
			if _, err := reader.Seek(6, io.SeekCurrent); err != nil {
				return nil, nil, fmt.Errorf("truncated fmt chunk: %w", err)
			}

			var bitsPerSample uint16
			if err := binary.Read(reader, binary.LittleEndian, &bitsPerSample); err != nil {
				return nil, nil, fmt.Errorf("failed to read bit depth: %w", err)
			}
			format.BitDepth = int(bitsPerSample)

			// Skip any extra format bytes
			if chunkSize > 16 {
				if _, err := reader.Seek(int64(chunkSize-16), io.SeekCurrent); err != nil {
					return nil, nil, fmt.Errorf("truncated fmt chunk: %w", err)
				}
			}
		case "data":
			var err error
			dataStart, err = reader.Seek(0, io.SeekCurrent)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to locate data chunk: %w", err)
			}
			dataSize = chunkSize
		default:
			if _, err := reader.Seek(int64(chunkSize), io.SeekCurrent); err != nil {
				return nil, nil, fmt.Errorf("truncated chunk: %w", err)
			}
		}

		if dataSize > 0 {
			break
		}
	}

	if dataSize == 0 {
		return nil, nil, fmt.Errorf("no data chunk found")
	}

	audioData := make([]byte, dataSize)
	if _, err := reader.Seek(dataStart, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("failed to seek to audio data: %w", err)
	}
	if _, err := io.ReadFull(reader, audioData); err != nil {
		return nil, nil, fmt.Errorf("truncated audio data: %w", err)
	}

	return format, audioData, nil
}
