package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/avreline/deskclock/pkg/settings"
)

// forcedVariantTheme pins the default theme to a light or dark
// variant regardless of the OS preference.
type forcedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *forcedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

func (dc *DeskClock) applyTheme() {
	switch dc.settings.String(settings.KeyTheme) {
	case "dark":
		dc.app.Settings().SetTheme(&forcedVariantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		dc.app.Settings().SetTheme(&forcedVariantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		dc.app.Settings().SetTheme(theme.DefaultTheme())
	}
}
