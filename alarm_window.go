package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/models"
)

type AlarmWindow struct {
	window fyne.Window
	dc     *DeskClock

	table       *widget.Table
	alarmsData  []models.Alarm
	selectedRow int
}

func (dc *DeskClock) showAlarmWindow() {
	if dc.alarmWindow != nil {
		dc.alarmWindow.window.Show()
		dc.alarmWindow.window.RequestFocus()
		return
	}

	aw := &AlarmWindow{dc: dc, selectedRow: -1}
	aw.window = dc.app.NewWindow("DeskClock - Alarms")
	aw.buildUI()
	aw.window.SetOnClosed(func() {
		dc.alarmWindow = nil
	})

	dc.alarmWindow = aw
	aw.window.Resize(fyne.NewSize(640, 420))
	aw.window.CenterOnScreen()
	aw.window.Show()
}

func (aw *AlarmWindow) buildUI() {
	aw.alarmsData = aw.dc.alarms.List()

	table := widget.NewTable(
		func() (rows int, cols int) {
			return len(aw.alarmsData), 5
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row >= len(aw.alarmsData) {
				label.SetText("")
				return
			}

			a := aw.alarmsData[id.Row]
			switch id.Col {
			case 0:
				label.SetText(a.TimeString())
			case 1:
				label.SetText(a.Label)
			case 2:
				label.SetText(string(a.Sound))
			case 3:
				if a.Repeat {
					label.SetText("Daily")
				} else {
					label.SetText("Once")
				}
			case 4:
				if a.SnoozedUntil != nil {
					label.SetText(fmt.Sprintf("Snoozed until %s", a.SnoozedUntil.Format("3:04 PM")))
				} else if a.Enabled {
					label.SetText("On")
				} else {
					label.SetText("Off")
				}
			}

			if a.Enabled {
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
			label.SetText("Label")
		case 2:
			label.SetText("Sound")
		case 3:
			label.SetText("Repeat")
		case 4:
			label.SetText("Status")
		}
	}
	table.OnSelected = func(id widget.TableCellID) {
		aw.selectedRow = id.Row
	}

	widths := []float32{80, 220, 90, 80, 160}
	for i, w := range widths {
		table.SetColumnWidth(i, w)
	}
	aw.table = table

	addButton := widget.NewButton("Add", func() {
		aw.showAddAlarmDialog()
	})
	addButton.Icon = theme.ContentAddIcon()

	toggleButton := widget.NewButton("Toggle", func() {
		if a, ok := aw.selectedAlarm(); ok {
			aw.dc.alarms.Toggle(a.ID)
			aw.dc.persistAlarms()
			aw.refresh()
		}
	})

	deleteButton := widget.NewButton("Delete", func() {
		aw.showDeleteAlarmDialog()
	})
	deleteButton.Icon = theme.DeleteIcon()

	header := container.NewVBox(
		widget.NewLabel("Alarms"),
		widget.NewSeparator(),
		container.NewHBox(addButton, toggleButton, deleteButton),
	)

	aw.window.SetContent(container.NewPadded(container.NewBorder(
		header,
		nil,
		nil,
		nil,
		table,
	)))
}

func (aw *AlarmWindow) selectedAlarm() (models.Alarm, bool) {
	if aw.selectedRow < 0 || aw.selectedRow >= len(aw.alarmsData) {
		dialog.ShowInformation("No Selection", "Please select an alarm from the table.", aw.window)
		return models.Alarm{}, false
	}
	return aw.alarmsData[aw.selectedRow], true
}

func (aw *AlarmWindow) refresh() {
	aw.alarmsData = aw.dc.alarms.List()
	aw.selectedRow = -1
	aw.table.Refresh()
	aw.dc.updateSystemTrayMenu()
}

func (aw *AlarmWindow) showDeleteAlarmDialog() {
	a, ok := aw.selectedAlarm()
	if !ok {
		return
	}

	dialog.ShowConfirm("Delete Alarm",
		fmt.Sprintf("Delete the %s alarm %q?", a.TimeString(), a.Label),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			aw.dc.alarms.Remove(a.ID)
			aw.dc.persistAlarms()
			aw.refresh()
		}, aw.window)
}
