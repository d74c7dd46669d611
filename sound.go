package main

import (
	"github.com/avreline/deskclock/pkg/audio"
	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/settings"
)

// playAlarmSound starts the configured alarm tone looping. The caller
// owns the returned player and must Stop it.
func (dc *DeskClock) playAlarmSound() *audio.Player {
	sound := models.ParseSound(dc.settings.String(settings.KeyAlarmSound))
	return audio.Play(sound)
}
