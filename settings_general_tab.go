package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/settings"
	"github.com/avreline/deskclock/pkg/tzone"
)

func (sw *SettingsWindow) buildGeneralTab() fyne.CanvasObject {
	store := sw.dc.settings

	is24Check := widget.NewCheck("24-hour time", func(checked bool) {
		store.Set(settings.KeyIs24Hour, checked)
		sw.refreshClock()
	})
	is24Check.SetChecked(store.Bool(settings.KeyIs24Hour))

	secondsCheck := widget.NewCheck("Show seconds", func(checked bool) {
		store.Set(settings.KeyShowSeconds, checked)
		sw.refreshClock()
	})
	secondsCheck.SetChecked(store.Bool(settings.KeyShowSeconds))

	dateCheck := widget.NewCheck("Show date", func(checked bool) {
		store.Set(settings.KeyShowDate, checked)
		sw.refreshClock()
	})
	dateCheck.SetChecked(store.Bool(settings.KeyShowDate))

	tzSelect := widget.NewSelect(tzone.Available(), func(selected string) {
		store.Set(settings.KeyTimezone, selected)
		sw.refreshClock()
	})
	tzSelect.SetSelected(store.String(settings.KeyTimezone))

	trayCheck := widget.NewCheck("Minimize to system tray", func(checked bool) {
		store.Set(settings.KeySystemTrayEnabled, checked)
	})
	trayCheck.SetChecked(store.Bool(settings.KeySystemTrayEnabled))

	autoSaveCheck := widget.NewCheck("Save settings automatically", func(checked bool) {
		store.Set(settings.KeyAutoSave, checked)
	})
	autoSaveCheck.SetChecked(store.Bool(settings.KeyAutoSave))

	autoStartCheck := widget.NewCheck("Start at login", func(checked bool) {
		store.Set(settings.KeyAutoStart, checked)
		go func() {
			if err := setupAutostart(checked); err != nil {
				log.Warn().Err(err).Msg("failed to change autostart")
			}
		}()
	})
	autoStartCheck.SetChecked(store.Bool(settings.KeyAutoStart))

	return container.NewPadded(container.NewVBox(
		is24Check,
		secondsCheck,
		dateCheck,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, widget.NewLabel("Timezone"), tzSelect),
		widget.NewSeparator(),
		trayCheck,
		autoSaveCheck,
		autoStartCheck,
	))
}

func (sw *SettingsWindow) refreshClock() {
	if sw.dc.clockWindow != nil {
		sw.dc.clockWindow.Refresh()
	}
}
