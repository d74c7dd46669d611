package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/audio"
	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/settings"
	"github.com/avreline/deskclock/pkg/voice"
)

func (sw *SettingsWindow) buildSoundTab() fyne.CanvasObject {
	store := sw.dc.settings

	soundSelect := widget.NewSelect([]string{
		string(models.SoundDefault),
		string(models.SoundBeep),
		string(models.SoundChime),
		string(models.SoundBell),
	}, func(selected string) {
		store.Set(settings.KeyAlarmSound, selected)
	})
	soundSelect.SetSelected(store.String(settings.KeyAlarmSound))

	previewButton := widget.NewButton("Preview", func() {
		player := audio.Play(models.ParseSound(soundSelect.Selected))
		if player != nil {
			go func() {
				time.Sleep(2 * time.Second)
				player.Stop()
			}()
		}
	})

	voiceCheck := widget.NewCheck("Hourly voice announcements", func(checked bool) {
		store.Set(settings.KeyVoiceEnabled, checked)
	})
	voiceCheck.SetChecked(store.Bool(settings.KeyVoiceEnabled))
	if !sw.dc.announcer.Enabled() {
		voiceCheck.Disable()
	}

	rebuildAnnouncer := func() {
		sw.dc.announcer = voice.NewSystemAnnouncer(
			store.Int(settings.KeyVoiceRate),
			store.Float(settings.KeyVoiceVolume),
		)
	}

	rates := []string{"120", "150", "180", "220"}
	rateSelect := widget.NewSelect(rates, func(selected string) {
		var rate int
		if _, err := fmt.Sscanf(selected, "%d", &rate); err == nil {
			store.Set(settings.KeyVoiceRate, rate)
			rebuildAnnouncer()
		}
	})
	rateSelect.SetSelected(fmt.Sprintf("%d", store.Int(settings.KeyVoiceRate)))

	volumeSlider := widget.NewSlider(0.1, 1)
	volumeSlider.Step = 0.1
	volumeSlider.Value = store.Float(settings.KeyVoiceVolume)
	volumeSlider.OnChangeEnded = func(value float64) {
		store.Set(settings.KeyVoiceVolume, value)
		rebuildAnnouncer()
	}

	testButton := widget.NewButton("Test Voice", func() {
		sw.dc.announcer.Speak(voice.AnnounceTime(sw.dc.displayTime(), store.Bool(settings.KeyIs24Hour)))
	})
	if !sw.dc.announcer.Enabled() {
		testButton.Disable()
	}

	return container.NewPadded(container.NewVBox(
		container.NewGridWithColumns(2, widget.NewLabel("Alarm sound"), container.NewHBox(soundSelect, previewButton)),
		widget.NewSeparator(),
		voiceCheck,
		container.NewGridWithColumns(2, widget.NewLabel("Speech rate (wpm)"), container.NewHBox(rateSelect, testButton)),
		container.NewGridWithColumns(2, widget.NewLabel("Voice volume"), volumeSlider),
	))
}
