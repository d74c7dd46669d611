package main

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/avreline/deskclock/pkg/models"
)

func (dc *DeskClock) setupSystemTray() {
	dc.updateSystemTrayMenu()
}

func (dc *DeskClock) updateSystemTrayMenu() {
	desk, ok := dc.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	upcoming := dc.upcomingAlarms(5)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming Alarms:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, a := range upcoming {
			alarmItem := fyne.NewMenuItem(fmt.Sprintf("  %s - %s", a.TimeString(), truncateString(a.Label, 35)), nil)
			alarmItem.Disabled = true
			menuItems = append(menuItems, alarmItem)
		}
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show Clock", func() {
			dc.showClockWindow()
		}),
		fyne.NewMenuItem("Alarms", func() {
			dc.showAlarmWindow()
		}),
		fyne.NewMenuItem("Stopwatch", func() {
			dc.showStopwatchWindow()
		}),
		fyne.NewMenuItem("Settings", func() {
			dc.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		dc.quit()
	}))

	desk.SetSystemTrayMenu(fyne.NewMenu("DeskClock", menuItems...))
}

// upcomingAlarms returns the next N enabled alarms ordered by how
// soon they fire relative to now.
func (dc *DeskClock) upcomingAlarms(limit int) []models.Alarm {
	now := dc.displayTime()
	nowMinutes := now.Hour()*60 + now.Minute()

	enabled := []models.Alarm{}
	for _, a := range dc.alarms.List() {
		if a.Enabled {
			enabled = append(enabled, a)
		}
	}

	// Sort by minutes until the next fire, wrapping past midnight
	sort.Slice(enabled, func(i, j int) bool {
		return minutesUntil(enabled[i], nowMinutes) < minutesUntil(enabled[j], nowMinutes)
	})

	if len(enabled) > limit {
		enabled = enabled[:limit]
	}
	return enabled
}

func minutesUntil(a models.Alarm, nowMinutes int) int {
	target := a.Hour*60 + a.Minute
	delta := target - nowMinutes
	if delta < 0 {
		delta += 24 * 60
	}
	return delta
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
