package main

import (
	"fmt"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/avreline/deskclock/pkg/models"
)

func (aw *AlarmWindow) showAddAlarmDialog() {
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("07:30")
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Alarm")
	soundSelect := widget.NewSelect([]string{
		string(models.SoundDefault),
		string(models.SoundBeep),
		string(models.SoundChime),
		string(models.SoundBell),
	}, nil)
	soundSelect.SetSelected(string(models.SoundDefault))
	repeatCheck := widget.NewCheck("Repeat daily", nil)

	items := []*widget.FormItem{
		widget.NewFormItem("Time (HH:MM)", timeEntry),
		widget.NewFormItem("Label", labelEntry),
		widget.NewFormItem("Sound", soundSelect),
		widget.NewFormItem("", repeatCheck),
	}

	dialog.ShowForm("Add Alarm", "Create", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		hour, minute, err := models.ParseAlarmTime(timeEntry.Text)
		if err != nil {
			dialog.ShowError(err, aw.window)
			return
		}

		sound := models.ParseSound(soundSelect.Selected)
		if _, err := aw.dc.alarms.Add(hour, minute, labelEntry.Text, sound, repeatCheck.Checked); err != nil {
			dialog.ShowError(err, aw.window)
			return
		}

		aw.dc.persistAlarms()
		aw.refresh()
	}, aw.window)
}

func (sw *SettingsWindow) showAddScheduleDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Lunch break")
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("12:00")
	actionSelect := widget.NewSelect([]string{
		string(models.ActionNotification),
		string(models.ActionSound),
		string(models.ActionVoice),
	}, nil)
	actionSelect.SetSelected(string(models.ActionNotification))
	messageEntry := widget.NewEntry()
	messageEntry.SetPlaceHolder("Time for lunch")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Time (HH:MM)", timeEntry),
		widget.NewFormItem("Action", actionSelect),
		widget.NewFormItem("Message", messageEntry),
	}

	dialog.ShowForm("Add Schedule", "Create", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		hour, minute, err := models.ParseAlarmTime(timeEntry.Text)
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}

		action := models.ScheduleAction(actionSelect.Selected)
		if _, err := sw.dc.scheduler.Add(nameEntry.Text, hour, minute, action, messageEntry.Text); err != nil {
			dialog.ShowError(err, sw.window)
			return
		}

		sw.dc.persistSchedules()
		sw.refreshSchedules()
	}, sw.window)
}

func (sw *SettingsWindow) showAddCalendarSourceDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Work")
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://calendar.example.com/basic.ics")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("iCal URL", urlEntry),
	}

	dialog.ShowForm("Add Calendar Source", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		source := models.CalendarSource{
			ID:   uuid.NewString(),
			Name: nameEntry.Text,
			URL:  urlEntry.Text,
		}
		if !source.Validate() {
			dialog.ShowError(fmt.Errorf("calendar source needs a name and an http(s) URL"), sw.window)
			return
		}

		sw.sourcesData = append(sw.sourcesData, source)
		sw.saveCalendarSources()
	}, sw.window)
}
