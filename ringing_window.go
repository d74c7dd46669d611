package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/audio"
	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/settings"
	"github.com/avreline/deskclock/pkg/voice"
)

const snoozeDuration = 5 * time.Minute

// RingingWindow is shown when an alarm fires. It loops the alarm tone
// until dismissed or snoozed.
type RingingWindow struct {
	window fyne.Window
	dc     *DeskClock
	alarm  models.Alarm
	player *audio.Player
}

func showRingingWindow(dc *DeskClock, a models.Alarm) {
	rw := &RingingWindow{
		dc:     dc,
		alarm:  a,
		player: audio.Play(a.Sound),
	}

	if dc.settings.Bool(settings.KeyVoiceEnabled) && dc.announcer.Enabled() {
		dc.announcer.Speak(fmt.Sprintf("%s. It is %s.",
			a.Label, voice.AnnounceTime(dc.displayTime(), dc.settings.Bool(settings.KeyIs24Hour))))
	}

	fyne.Do(func() {
		rw.window = dc.app.NewWindow("Alarm")
		rw.buildUI()
		rw.window.SetOnClosed(func() {
			rw.stopSound()
		})
		rw.window.Resize(fyne.NewSize(420, 240))
		rw.window.CenterOnScreen()
		rw.window.Show()
		rw.window.RequestFocus()
	})
}

func (rw *RingingWindow) buildUI() {
	title := canvas.NewText(rw.alarm.Label, nil)
	title.TextSize = 32
	title.Alignment = fyne.TextAlignCenter

	timeLabel := widget.NewLabel(rw.alarm.TimeString())
	timeLabel.Alignment = fyne.TextAlignCenter

	dismissButton := widget.NewButton("Dismiss", func() {
		rw.stopSound()
		rw.window.Close()
	})
	dismissButton.Importance = widget.HighImportance

	snoozeButton := widget.NewButton(fmt.Sprintf("Snooze %dm", int(snoozeDuration.Minutes())), func() {
		rw.stopSound()
		rw.dc.alarms.Snooze(rw.alarm.ID, snoozeDuration)
		rw.dc.persistAlarms()
		rw.window.Close()
	})

	content := container.NewVBox(
		container.NewPadded(title),
		timeLabel,
		widget.NewSeparator(),
		container.NewCenter(container.NewHBox(snoozeButton, dismissButton)),
	)

	rw.window.SetContent(container.NewPadded(container.NewCenter(content)))
}

func (rw *RingingWindow) stopSound() {
	if rw.player != nil {
		rw.player.Stop()
		rw.player = nil
	}
}
