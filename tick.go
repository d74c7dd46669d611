package main

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/avreline/deskclock/pkg/settings"
	"github.com/avreline/deskclock/pkg/tzone"
	"github.com/avreline/deskclock/pkg/voice"
)

// startTicker drives the whole app off a single one-second tick: the
// clock display, alarm and schedule checks, the countdown timer, and
// hourly voice announcements.
func (dc *DeskClock) startTicker() {
	dc.tickTicker = time.NewTicker(time.Second)
	go func() {
		for range dc.tickTicker.C {
			dc.tick()
		}
	}()
}

func (dc *DeskClock) tick() {
	now := dc.displayTime()

	dc.alarms.Check(now)
	dc.scheduler.Check(now)
	dc.timer.Tick()
	dc.announceHour(now)

	fyne.Do(func() {
		if dc.clockWindow != nil {
			dc.clockWindow.Update(now)
		}
		if dc.stopwatchWindow != nil {
			dc.stopwatchWindow.Update()
		}
	})
}

// displayTime is the current time in the configured display timezone.
func (dc *DeskClock) displayTime() time.Time {
	return tzone.In(dc.clock.Now(), dc.settings.String(settings.KeyTimezone))
}

// announceHour speaks the time once when a new hour starts.
func (dc *DeskClock) announceHour(now time.Time) {
	if !dc.settings.Bool(settings.KeyVoiceEnabled) || !dc.announcer.Enabled() {
		return
	}
	if now.Minute() != 0 || now.Hour() == dc.lastVoiceHour {
		return
	}
	dc.lastVoiceHour = now.Hour()
	dc.announcer.Speak(voice.AnnounceHour(now, dc.settings.Bool(settings.KeyIs24Hour)))
}
