package main

import (
	"fyne.io/fyne/v2"

	"github.com/avreline/deskclock/pkg/face"
	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/settings"
)

// DeskClock implements api.Backend for the companion server.

func (dc *DeskClock) Status() map[string]any {
	return map[string]any{
		"app":       "deskclock",
		"style":     dc.faces.CurrentName(),
		"alarms":    len(dc.alarms.List()),
		"scheduler": dc.scheduler.Running(),
		"weather":   dc.settings.Bool(settings.KeyWeatherEnabled),
		"calendar":  dc.calendar.Enabled(),
		"voice":     dc.settings.Bool(settings.KeyVoiceEnabled) && dc.announcer.Enabled(),
		"cloudsync": dc.cloud.Enabled(),
		"plugins":   dc.plugins.Enabled(),
	}
}

func (dc *DeskClock) TimePayload() map[string]any {
	now := dc.displayTime()
	opts := face.Options{
		Use24Hour:   dc.settings.Bool(settings.KeyIs24Hour),
		ShowSeconds: dc.settings.Bool(settings.KeyShowSeconds),
	}
	return map[string]any{
		"time":     dc.faces.Current().FormatTime(now, opts),
		"date":     now.Format("Monday, January 2, 2006"),
		"timezone": dc.settings.String(settings.KeyTimezone),
		"unix":     now.Unix(),
	}
}

func (dc *DeskClock) Alarms() []models.Alarm {
	return dc.alarms.List()
}

func (dc *DeskClock) AddAlarm(hour, minute int, label string, repeat bool) (*models.Alarm, error) {
	sound := models.ParseSound(dc.settings.String(settings.KeyAlarmSound))
	a, err := dc.alarms.Add(hour, minute, label, sound, repeat)
	if err != nil {
		return nil, err
	}

	dc.persistAlarms()
	fyne.Do(func() {
		if dc.alarmWindow != nil {
			dc.alarmWindow.refresh()
		}
		dc.updateSystemTrayMenu()
	})
	return &a, nil
}

func (dc *DeskClock) Weather() models.WeatherReport {
	return dc.weather.Current()
}

func (dc *DeskClock) CalendarEvents() []models.Event {
	return dc.calendar.Upcoming()
}

func (dc *DeskClock) UpdateSettings(values map[string]any) {
	dc.settings.Update(values)
	dc.applyIntegrations()
	fyne.Do(func() {
		dc.applyTheme()
		if dc.clockWindow != nil {
			dc.clockWindow.Refresh()
		}
	})
}
