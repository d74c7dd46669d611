package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/settings"
)

func (sw *SettingsWindow) buildSchedulesTab() fyne.CanvasObject {
	sw.schedulesData = sw.dc.scheduler.List()

	table := widget.NewTable(
		func() (rows int, cols int) {
			return len(sw.schedulesData), 5
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row >= len(sw.schedulesData) {
				label.SetText("")
				return
			}

			s := sw.schedulesData[id.Row]
			switch id.Col {
			case 0:
				label.SetText(s.TimeString())
			case 1:
				label.SetText(s.Name)
			case 2:
				label.SetText(string(s.Action))
			case 3:
				label.SetText(s.Message)
			case 4:
				if s.Enabled {
					label.SetText("On")
				} else {
					label.SetText("Off")
				}
			}

			if s.Enabled {
				label.Importance = widget.MediumImportance
			} else {
				label.Importance = widget.LowImportance
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("Header")
		label.TextStyle.Bold = true
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		switch id.Col {
		case 0:
			label.SetText("Time")
		case 1:
			label.SetText("Name")
		case 2:
			label.SetText("Action")
		case 3:
			label.SetText("Message")
		case 4:
			label.SetText("Status")
		}
	}
	table.OnSelected = func(id widget.TableCellID) {
		sw.selectedScheduleRow = id.Row
	}

	widths := []float32{80, 160, 110, 220, 70}
	for i, w := range widths {
		table.SetColumnWidth(i, w)
	}
	sw.schedulesTable = table

	runningCheck := widget.NewCheck("Scheduler running", func(checked bool) {
		if checked {
			sw.dc.scheduler.Start()
		} else {
			sw.dc.scheduler.Stop()
		}
		sw.dc.settings.Set(settings.KeySchedulerEnabled, checked)
	})
	runningCheck.SetChecked(sw.dc.scheduler.Running())

	autostartCheck := widget.NewCheck("Start scheduler with the app", func(checked bool) {
		sw.dc.settings.Set(settings.KeySchedulerAutostart, checked)
	})
	autostartCheck.SetChecked(sw.dc.settings.Bool(settings.KeySchedulerAutostart))

	addButton := widget.NewButton("Add", func() {
		sw.showAddScheduleDialog()
	})
	addButton.Icon = theme.ContentAddIcon()

	toggleButton := widget.NewButton("Toggle", func() {
		if s, ok := sw.selectedSchedule(); ok {
			if s.Enabled {
				sw.dc.scheduler.Disable(s.ID)
			} else {
				sw.dc.scheduler.Enable(s.ID)
			}
			sw.dc.persistSchedules()
			sw.refreshSchedules()
		}
	})

	deleteButton := widget.NewButton("Delete", func() {
		if s, ok := sw.selectedSchedule(); ok {
			sw.dc.scheduler.Remove(s.ID)
			sw.dc.persistSchedules()
			sw.refreshSchedules()
		}
	})
	deleteButton.Icon = theme.DeleteIcon()

	header := container.NewVBox(
		runningCheck,
		autostartCheck,
		widget.NewSeparator(),
		container.NewHBox(addButton, toggleButton, deleteButton),
	)

	return container.NewPadded(container.NewBorder(header, nil, nil, nil, table))
}

func (sw *SettingsWindow) selectedSchedule() (models.Schedule, bool) {
	if sw.selectedScheduleRow < 0 || sw.selectedScheduleRow >= len(sw.schedulesData) {
		dialog.ShowInformation("No Selection", "Please select a schedule from the table.", sw.window)
		return models.Schedule{}, false
	}
	return sw.schedulesData[sw.selectedScheduleRow], true
}

func (sw *SettingsWindow) refreshSchedules() {
	sw.schedulesData = sw.dc.scheduler.List()
	sw.selectedScheduleRow = -1
	if sw.schedulesTable != nil {
		sw.schedulesTable.Refresh()
	}
}
