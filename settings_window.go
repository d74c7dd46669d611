package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/models"
)

// SettingsWindow edits the settings store directly. Changes apply
// immediately; the store persists them when auto save is on.
type SettingsWindow struct {
	window fyne.Window
	dc     *DeskClock

	// Integrations tab
	sourcesData []models.CalendarSource
	sourcesList *widget.List

	// Schedules tab
	schedulesData       []models.Schedule
	schedulesTable      *widget.Table
	selectedScheduleRow int
}

func (dc *DeskClock) showSettingsWindow() {
	if dc.settingsWindow != nil {
		dc.settingsWindow.window.Show()
		dc.settingsWindow.window.RequestFocus()
		return
	}

	sw := &SettingsWindow{dc: dc, selectedScheduleRow: -1}
	sw.window = dc.app.NewWindow("DeskClock - Settings")
	sw.buildUI()
	sw.window.SetOnClosed(func() {
		dc.settingsWindow = nil
	})

	dc.settingsWindow = sw
	sw.window.Resize(fyne.NewSize(760, 560))
	sw.window.CenterOnScreen()
	sw.window.Show()
}

func (sw *SettingsWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Appearance", sw.buildAppearanceTab()),
		container.NewTabItem("Sound & Voice", sw.buildSoundTab()),
		container.NewTabItem("Schedules", sw.buildSchedulesTab()),
		container.NewTabItem("Integrations", sw.buildIntegrationsTab()),
		container.NewTabItem("Plugins", sw.buildPluginsTab()),
	)

	resetButton := widget.NewButton("Reset to Defaults", func() {
		sw.dc.settings.ResetToDefaults()
		sw.dc.applyIntegrations()
		sw.dc.applyTheme()
		sw.window.Close()
		sw.dc.showSettingsWindow()
	})

	closeButton := widget.NewButton("Close", func() {
		sw.window.Close()
	})

	buttonRow := container.NewBorder(nil, nil, resetButton, closeButton, container.NewHBox())

	sw.window.SetContent(container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	))
}
