package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/face"
	"github.com/avreline/deskclock/pkg/settings"
)

type ClockWindow struct {
	window fyne.Window
	dc     *DeskClock

	timeText   *canvas.Text
	binaryText *widget.Label
	dateLabel  *widget.Label
	infoLabel  *widget.Label
}

func (dc *DeskClock) showClockWindow() {
	if dc.clockWindow != nil {
		dc.clockWindow.window.Show()
		dc.clockWindow.window.RequestFocus()
		return
	}

	cw := &ClockWindow{dc: dc}
	cw.window = dc.app.NewWindow("DeskClock")
	cw.buildUI()
	cw.window.SetOnClosed(func() {
		dc.clockWindow = nil
	})
	cw.window.SetCloseIntercept(func() {
		// Minimize to tray instead of exiting when the tray is on
		if dc.settings.Bool(settings.KeySystemTrayEnabled) {
			cw.window.Hide()
			return
		}
		cw.window.Close()
	})

	dc.clockWindow = cw
	cw.Update(dc.displayTime())
	cw.window.Resize(restoreGeometry(dc.settings.String(settings.KeyWindowGeometry)))
	cw.window.CenterOnScreen()
	cw.window.Show()
}

// restoreGeometry parses a stored "WxH" size, falling back to the
// default window size on anything malformed.
func restoreGeometry(geometry string) fyne.Size {
	var w, h float32
	if _, err := fmt.Sscanf(geometry, "%fx%f", &w, &h); err == nil && w >= 200 && h >= 150 {
		return fyne.NewSize(w, h)
	}
	return fyne.NewSize(520, 320)
}

// faceTextStyle maps the configured font style name onto the text
// styles the toolkit can render.
func faceTextStyle(name string) fyne.TextStyle {
	switch name {
	case "Monospace":
		return fyne.TextStyle{Monospace: true}
	case "Bold":
		return fyne.TextStyle{Bold: true}
	case "Italic":
		return fyne.TextStyle{Italic: true}
	default:
		return fyne.TextStyle{}
	}
}

func (cw *ClockWindow) saveGeometry() {
	size := cw.window.Canvas().Size()
	cw.dc.settings.Set(settings.KeyWindowGeometry, fmt.Sprintf("%.0fx%.0f", size.Width, size.Height))
}

func (cw *ClockWindow) buildUI() {
	cw.timeText = canvas.NewText("", nil)
	cw.timeText.TextSize = float32(cw.dc.settings.Int(settings.KeyFontSize))
	cw.timeText.Alignment = fyne.TextAlignCenter

	cw.binaryText = widget.NewLabel("")
	cw.binaryText.TextStyle.Monospace = true
	cw.binaryText.Alignment = fyne.TextAlignCenter
	cw.binaryText.Hide()

	cw.dateLabel = widget.NewLabel("")
	cw.dateLabel.Alignment = fyne.TextAlignCenter

	cw.infoLabel = widget.NewLabel("")
	cw.infoLabel.Alignment = fyne.TextAlignCenter
	cw.infoLabel.Wrapping = fyne.TextWrapWord

	styleButton := widget.NewButton("Style", func() {
		next := cw.dc.faces.Next()
		cw.dc.settings.Set(settings.KeyClockStyle, next)
		cw.Update(cw.dc.displayTime())
	})
	alarmsButton := widget.NewButton("Alarms", func() {
		cw.dc.showAlarmWindow()
	})
	stopwatchButton := widget.NewButton("Stopwatch", func() {
		cw.dc.showStopwatchWindow()
	})
	settingsButton := widget.NewButton("Settings", func() {
		cw.dc.showSettingsWindow()
	})

	buttons := container.NewCenter(container.NewHBox(
		styleButton, alarmsButton, stopwatchButton, settingsButton,
	))

	content := container.NewBorder(
		nil,
		buttons,
		nil,
		nil,
		container.NewCenter(container.NewVBox(
			cw.timeText,
			cw.binaryText,
			cw.dateLabel,
			cw.infoLabel,
		)),
	)

	cw.window.SetContent(container.NewPadded(content))
}

// Update repaints the face for the given display time. Must run on
// the Fyne thread.
func (cw *ClockWindow) Update(now time.Time) {
	opts := face.Options{
		Use24Hour:   cw.dc.settings.Bool(settings.KeyIs24Hour),
		ShowSeconds: cw.dc.settings.Bool(settings.KeyShowSeconds),
	}
	current := cw.dc.faces.Current()

	if current.Name() == face.StyleBinary {
		cw.timeText.Hide()
		cw.binaryText.Show()
		cw.binaryText.SetText(strings.Join(face.BinaryRows(now, opts.ShowSeconds), "\n"))
	} else {
		cw.binaryText.Hide()
		cw.timeText.Show()
		cw.timeText.Text = current.FormatTime(now, opts)
		cw.timeText.TextSize = float32(cw.dc.settings.Int(settings.KeyFontSize))
		cw.timeText.TextStyle = faceTextStyle(cw.dc.settings.String(settings.KeyFontFamily))
		cw.timeText.Refresh()
	}

	if cw.dc.settings.Bool(settings.KeyShowDate) {
		cw.dateLabel.Show()
		cw.dateLabel.SetText(now.Format("Monday, January 2, 2006"))
	} else {
		cw.dateLabel.Hide()
	}

	cw.updateInfoLine()
}

// updateInfoLine shows the weather snapshot and the next calendar
// event underneath the clock face.
func (cw *ClockWindow) updateInfoLine() {
	var parts []string

	if cw.dc.settings.Bool(settings.KeyWeatherEnabled) {
		report := cw.dc.weather.Current()
		if report.Condition != "" {
			parts = append(parts, fmt.Sprintf("%s, %.0f°C in %s",
				report.Condition, report.Temperature, report.Location))
		}
	}

	if cw.dc.calendar.Enabled() {
		if next := cw.dc.calendar.Next(); next != nil {
			parts = append(parts, fmt.Sprintf("Next: %s at %s",
				next.Title, next.StartTime.Format("3:04 PM")))
		}
	}

	if len(parts) == 0 {
		cw.infoLabel.Hide()
		return
	}
	cw.infoLabel.Show()
	cw.infoLabel.SetText(strings.Join(parts, "  ·  "))
}

// Refresh reapplies settings-driven styling and repaints.
func (cw *ClockWindow) Refresh() {
	cw.dc.faces.SetCurrent(cw.dc.settings.String(settings.KeyClockStyle))
	cw.Update(cw.dc.displayTime())
}
