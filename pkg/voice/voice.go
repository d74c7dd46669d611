// Package voice speaks announcements through whatever TTS command the
// host system provides. Missing backends disable the feature silently.
package voice

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Announcer speaks short phrases. Implementations must not block the
// caller beyond argument handoff.
type Announcer interface {
	Enabled() bool
	Speak(text string)
}

// SystemAnnouncer shells out to the platform TTS binary: say on
// macOS, espeak/espeak-ng on Linux, PowerShell speech synthesis on
// Windows.
type SystemAnnouncer struct {
	binary string
	args   func(text string) []string
	rate   int
	volume float64
}

// NewSystemAnnouncer probes for a usable TTS binary. Rate is words
// per minute and volume is 0..1, each applied where the backend
// supports it.
func NewSystemAnnouncer(rate int, volume float64) *SystemAnnouncer {
	if rate <= 0 {
		rate = 150
	}
	if volume <= 0 || volume > 1 {
		volume = 0.9
	}
	a := &SystemAnnouncer{rate: rate, volume: volume}

	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("say"); err == nil {
			a.binary = "say"
			a.args = func(text string) []string {
				// say reads volume from an inline volm directive
				return []string{"-r", strconv.Itoa(a.rate), fmt.Sprintf("[[volm %.2f]] %s", a.volume, text)}
			}
		}
	case "windows":
		if _, err := exec.LookPath("powershell"); err == nil {
			a.binary = "powershell"
			a.args = func(text string) []string {
				script := fmt.Sprintf(
					"Add-Type -AssemblyName System.Speech; "+
						"$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; "+
						"$s.Volume = %d; $s.Speak(%q)", int(a.volume*100), text)
				return []string{"-NoProfile", "-Command", script}
			}
		}
	default:
		for _, candidate := range []string{"espeak-ng", "espeak"} {
			if _, err := exec.LookPath(candidate); err == nil {
				a.binary = candidate
				a.args = func(text string) []string {
					return []string{
						"-s", strconv.Itoa(a.rate),
						"-a", strconv.Itoa(int(a.volume * 200)),
						text,
					}
				}
				break
			}
		}
	}

	if a.binary == "" {
		log.Info().Msg("no TTS backend found, voice announcements disabled")
	} else {
		log.Debug().Str("binary", a.binary).Msg("voice announcer ready")
	}
	return a
}

// Enabled reports whether a TTS backend was found.
func (a *SystemAnnouncer) Enabled() bool {
	return a.binary != ""
}

// Speak runs the TTS command on its own goroutine. Failures only log;
// the clock keeps ticking.
func (a *SystemAnnouncer) Speak(text string) {
	if !a.Enabled() || text == "" {
		return
	}
	go func() {
		cmd := exec.Command(a.binary, a.args(text)...)
		if err := cmd.Run(); err != nil {
			log.Warn().Err(err).Str("binary", a.binary).Msg("voice announcement failed")
		}
	}()
}

// AnnounceTime renders the spoken form of a time, matching the
// clock's hour announcements.
func AnnounceTime(t time.Time, use24Hour bool) string {
	if use24Hour {
		return t.Format("The time is 15 04")
	}
	return t.Format("The time is 3 04 PM")
}

// AnnounceHour renders the short hourly chime phrase.
func AnnounceHour(t time.Time, use24Hour bool) string {
	if use24Hour {
		return t.Format("It's 15 hundred hours")
	}
	return t.Format("It's 3 PM")
}
