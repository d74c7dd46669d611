package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/settings"
)

func (sw *SettingsWindow) buildIntegrationsTab() fyne.CanvasObject {
	return container.NewVScroll(container.NewPadded(container.NewVBox(
		sw.buildWeatherSection(),
		widget.NewSeparator(),
		sw.buildCalendarSection(),
		widget.NewSeparator(),
		sw.buildCloudSyncSection(),
		widget.NewSeparator(),
		sw.buildCompanionSection(),
	)))
}

func (sw *SettingsWindow) buildWeatherSection() fyne.CanvasObject {
	store := sw.dc.settings

	apiKeyEntry := widget.NewPasswordEntry()
	apiKeyEntry.SetText(store.String(settings.KeyWeatherAPIKey))
	apiKeyEntry.OnChanged = func(text string) {
		store.Set(settings.KeyWeatherAPIKey, text)
		sw.dc.applyIntegrations()
	}

	locationEntry := widget.NewEntry()
	locationEntry.SetText(store.String(settings.KeyWeatherLocation))
	locationEntry.OnChanged = func(text string) {
		store.Set(settings.KeyWeatherLocation, text)
		sw.dc.applyIntegrations()
	}

	enabledCheck := widget.NewCheck("Show weather", func(checked bool) {
		store.Set(settings.KeyWeatherEnabled, checked)
		sw.dc.applyIntegrations()
		if checked {
			go sw.dc.syncWeatherAndCalendar()
		}
	})
	enabledCheck.SetChecked(store.Bool(settings.KeyWeatherEnabled))

	return container.NewVBox(
		widget.NewLabelWithStyle("Weather", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		enabledCheck,
		container.NewGridWithColumns(2,
			widget.NewLabel("API key"), apiKeyEntry,
			widget.NewLabel("Location"), locationEntry,
		),
	)
}

func (sw *SettingsWindow) buildCalendarSection() fyne.CanvasObject {
	store := sw.dc.settings
	store.GetJSON(settings.KeyCalendarSources, &sw.sourcesData)

	selectedIndex := -1
	sw.sourcesList = widget.NewList(
		func() int {
			return len(sw.sourcesData)
		},
		func() fyne.CanvasObject {
			nameLabel := widget.NewLabel("Name")
			nameLabel.TextStyle.Bold = true
			urlLabel := widget.NewLabel("URL")
			urlLabel.Importance = widget.MediumImportance
			return container.NewVBox(nameLabel, urlLabel)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			vbox := o.(*fyne.Container)
			source := sw.sourcesData[i]
			vbox.Objects[0].(*widget.Label).SetText(source.Name)

			displayURL := source.URL
			if len(displayURL) > 60 {
				displayURL = displayURL[:57] + "..."
			}
			vbox.Objects[1].(*widget.Label).SetText(displayURL)
		})
	sw.sourcesList.OnSelected = func(id widget.ListItemID) {
		selectedIndex = id
	}

	addButton := widget.NewButton("Add", func() {
		sw.showAddCalendarSourceDialog()
	})
	addButton.Icon = theme.ContentAddIcon()

	removeButton := widget.NewButton("Remove", func() {
		if selectedIndex < 0 || selectedIndex >= len(sw.sourcesData) {
			dialog.ShowInformation("No Selection", "Please select a calendar source.", sw.window)
			return
		}
		sw.sourcesData = append(sw.sourcesData[:selectedIndex], sw.sourcesData[selectedIndex+1:]...)
		selectedIndex = -1
		sw.saveCalendarSources()
	})
	removeButton.Icon = theme.DeleteIcon()

	syncButton := widget.NewButton("Sync Now", func() {
		go sw.dc.syncWeatherAndCalendar()
	})
	syncButton.Icon = theme.ViewRefreshIcon()

	enabledCheck := widget.NewCheck("Show calendar events", func(checked bool) {
		store.Set(settings.KeyCalendarEnabled, checked)
		sw.dc.applyIntegrations()
	})
	enabledCheck.SetChecked(store.Bool(settings.KeyCalendarEnabled))

	listWrap := container.NewVBox(sw.sourcesList)
	sw.sourcesList.Resize(fyne.NewSize(0, 160))

	return container.NewVBox(
		widget.NewLabelWithStyle("Calendar", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		enabledCheck,
		listWrap,
		container.NewHBox(addButton, removeButton, syncButton),
	)
}

func (sw *SettingsWindow) saveCalendarSources() {
	sw.dc.settings.SetJSON(settings.KeyCalendarSources, sw.sourcesData)
	sw.dc.applyIntegrations()
	if sw.sourcesList != nil {
		sw.sourcesList.Refresh()
	}
}

func (sw *SettingsWindow) buildCloudSyncSection() fyne.CanvasObject {
	store := sw.dc.settings

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://sync.example.com/deskclock")
	urlEntry.SetText(store.String(settings.KeyCloudSyncURL))
	urlEntry.OnChanged = func(text string) {
		store.Set(settings.KeyCloudSyncURL, text)
		sw.dc.applyIntegrations()
	}

	tokenEntry := widget.NewPasswordEntry()
	tokenEntry.SetText(store.String(settings.KeyCloudSyncToken))
	tokenEntry.OnChanged = func(text string) {
		store.Set(settings.KeyCloudSyncToken, text)
		sw.dc.applyIntegrations()
	}

	enabledCheck := widget.NewCheck("Sync settings to the cloud", func(checked bool) {
		store.Set(settings.KeyCloudSyncEnabled, checked)
		sw.dc.applyIntegrations()
	})
	enabledCheck.SetChecked(store.Bool(settings.KeyCloudSyncEnabled))

	statusLabel := widget.NewLabel("")

	uploadButton := widget.NewButton("Upload Now", func() {
		go func() {
			err := sw.dc.cloud.Upload(store.All())
			fyne.Do(func() {
				if err != nil {
					statusLabel.SetText(fmt.Sprintf("Upload failed: %v", err))
				} else {
					statusLabel.SetText("Settings uploaded")
				}
			})
		}()
	})

	downloadButton := widget.NewButton("Download Now", func() {
		go func() {
			merged := sw.dc.cloud.Sync(store.All())
			store.Update(merged)
			sw.dc.applyIntegrations()
			fyne.Do(func() {
				statusLabel.SetText("Settings synced")
				sw.refreshClock()
			})
		}()
	})

	return container.NewVBox(
		widget.NewLabelWithStyle("Cloud Sync", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		enabledCheck,
		container.NewGridWithColumns(2,
			widget.NewLabel("Endpoint URL"), urlEntry,
			widget.NewLabel("Access token"), tokenEntry,
		),
		container.NewHBox(uploadButton, downloadButton, statusLabel),
	)
}

func (sw *SettingsWindow) buildCompanionSection() fyne.CanvasObject {
	store := sw.dc.settings

	portEntry := widget.NewEntry()
	portEntry.SetText(fmt.Sprintf("%d", store.Int(settings.KeyCompanionPort)))
	portEntry.OnChanged = func(text string) {
		var port int
		if _, err := fmt.Sscanf(text, "%d", &port); err == nil && port > 0 && port < 65536 {
			store.Set(settings.KeyCompanionPort, port)
		}
	}

	enabledCheck := widget.NewCheck("Enable companion API", func(checked bool) {
		store.Set(settings.KeyCompanionEnabled, checked)
		if checked {
			sw.dc.startCompanion()
		} else {
			sw.dc.stopCompanion()
		}
	})
	enabledCheck.SetChecked(store.Bool(settings.KeyCompanionEnabled))

	return container.NewVBox(
		widget.NewLabelWithStyle("Mobile Companion", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		enabledCheck,
		container.NewGridWithColumns(2, widget.NewLabel("Port"), portEntry),
	)
}
