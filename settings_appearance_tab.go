package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/settings"
)

func (sw *SettingsWindow) buildAppearanceTab() fyne.CanvasObject {
	store := sw.dc.settings

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		store.Set(settings.KeyTheme, selected)
		sw.dc.applyTheme()
	})
	themeSelect.SetSelected(store.String(settings.KeyTheme))

	styleSelect := widget.NewSelect(sw.dc.faces.Available(), func(selected string) {
		store.Set(settings.KeyClockStyle, selected)
		sw.dc.faces.SetCurrent(selected)
		sw.refreshClock()
	})
	styleSelect.SetSelected(sw.dc.faces.CurrentName())

	fontSelect := widget.NewSelect([]string{"Default", "Monospace", "Bold", "Italic"}, func(selected string) {
		store.Set(settings.KeyFontFamily, selected)
		sw.refreshClock()
	})
	fontSelect.SetSelected(store.String(settings.KeyFontFamily))

	sizes := []string{"24", "36", "48", "64", "80", "96"}
	sizeSelect := widget.NewSelect(sizes, func(selected string) {
		var size int
		if _, err := fmt.Sscanf(selected, "%d", &size); err == nil {
			store.Set(settings.KeyFontSize, size)
			sw.refreshClock()
		}
	})
	sizeSelect.SetSelected(fmt.Sprintf("%d", store.Int(settings.KeyFontSize)))

	return container.NewPadded(container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Theme"), themeSelect,
			widget.NewLabel("Clock style"), styleSelect,
			widget.NewLabel("Font style"), fontSelect,
			widget.NewLabel("Font size"), sizeSelect,
		),
	))
}
