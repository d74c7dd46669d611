package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/avreline/deskclock/pkg/timekeep"
)

type StopwatchWindow struct {
	window fyne.Window
	dc     *DeskClock

	elapsedText *canvas.Text
	lapsLabel   *widget.Label
	startButton *widget.Button

	remainingText *canvas.Text
	minutesEntry  *widget.Entry
	secondsEntry  *widget.Entry
	timerButton   *widget.Button
}

func (dc *DeskClock) showStopwatchWindow() {
	if dc.stopwatchWindow != nil {
		dc.stopwatchWindow.window.Show()
		dc.stopwatchWindow.window.RequestFocus()
		return
	}

	sw := &StopwatchWindow{dc: dc}
	sw.window = dc.app.NewWindow("DeskClock - Stopwatch")
	sw.buildUI()
	sw.window.SetOnClosed(func() {
		dc.stopwatchWindow = nil
	})

	dc.stopwatchWindow = sw
	sw.window.Resize(fyne.NewSize(420, 340))
	sw.window.CenterOnScreen()
	sw.window.Show()
}

func (sw *StopwatchWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("Stopwatch", sw.buildStopwatchTab()),
		container.NewTabItem("Timer", sw.buildTimerTab()),
	)
	sw.window.SetContent(container.NewPadded(tabs))
}

func (sw *StopwatchWindow) buildStopwatchTab() fyne.CanvasObject {
	sw.elapsedText = canvas.NewText(timekeep.FormatElapsed(0), nil)
	sw.elapsedText.TextSize = 48
	sw.elapsedText.Alignment = fyne.TextAlignCenter

	sw.lapsLabel = widget.NewLabel("")
	sw.lapsLabel.TextStyle.Monospace = true
	sw.lapsLabel.Alignment = fyne.TextAlignCenter

	sw.startButton = widget.NewButton("Start", func() {
		switch sw.dc.stopwatch.State() {
		case timekeep.Running:
			sw.dc.stopwatch.Pause()
		case timekeep.Paused:
			sw.dc.stopwatch.Resume()
		default:
			sw.dc.stopwatch.Start()
		}
		sw.Update()
	})
	sw.startButton.Importance = widget.HighImportance

	lapButton := widget.NewButton("Lap", func() {
		sw.dc.stopwatch.Lap()
		sw.Update()
	})
	resetButton := widget.NewButton("Reset", func() {
		sw.dc.stopwatch.Reset()
		sw.Update()
	})

	return container.NewVBox(
		container.NewCenter(sw.elapsedText),
		container.NewCenter(container.NewHBox(sw.startButton, lapButton, resetButton)),
		widget.NewSeparator(),
		sw.lapsLabel,
	)
}

func (sw *StopwatchWindow) buildTimerTab() fyne.CanvasObject {
	sw.remainingText = canvas.NewText("00:00.00", nil)
	sw.remainingText.TextSize = 48
	sw.remainingText.Alignment = fyne.TextAlignCenter

	sw.minutesEntry = widget.NewEntry()
	sw.minutesEntry.SetPlaceHolder("5")
	sw.secondsEntry = widget.NewEntry()
	sw.secondsEntry.SetPlaceHolder("0")

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Minutes"), sw.minutesEntry,
		widget.NewLabel("Seconds"), sw.secondsEntry,
	)

	sw.timerButton = widget.NewButton("Start", func() {
		switch sw.dc.timer.State() {
		case timekeep.Running:
			sw.dc.timer.Pause()
		case timekeep.Paused:
			sw.dc.timer.Resume()
		default:
			sw.startTimer()
		}
		sw.Update()
	})
	sw.timerButton.Importance = widget.HighImportance

	resetButton := widget.NewButton("Reset", func() {
		sw.dc.timer.Reset()
		sw.Update()
	})

	return container.NewVBox(
		container.NewCenter(sw.remainingText),
		form,
		container.NewCenter(container.NewHBox(sw.timerButton, resetButton)),
	)
}

func (sw *StopwatchWindow) startTimer() {
	minutes := 0
	seconds := 0
	if sw.minutesEntry.Text != "" {
		fmt.Sscanf(sw.minutesEntry.Text, "%d", &minutes)
	}
	if sw.secondsEntry.Text != "" {
		fmt.Sscanf(sw.secondsEntry.Text, "%d", &seconds)
	}

	target := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if target <= 0 {
		dialog.ShowError(fmt.Errorf("set a countdown of at least one second"), sw.window)
		return
	}
	sw.dc.timer.Start(target)
}

// Update repaints both tabs. Must run on the Fyne thread.
func (sw *StopwatchWindow) Update() {
	sw.elapsedText.Text = timekeep.FormatElapsed(sw.dc.stopwatch.Elapsed())
	sw.elapsedText.Refresh()

	laps := sw.dc.stopwatch.Laps()
	lines := make([]string, 0, len(laps))
	for i, lap := range laps {
		lines = append(lines, fmt.Sprintf("Lap %d  %s", i+1, timekeep.FormatElapsed(lap)))
	}
	sw.lapsLabel.SetText(strings.Join(lines, "\n"))

	switch sw.dc.stopwatch.State() {
	case timekeep.Running:
		sw.startButton.SetText("Pause")
	case timekeep.Paused:
		sw.startButton.SetText("Resume")
	default:
		sw.startButton.SetText("Start")
	}

	sw.remainingText.Text = timekeep.FormatElapsed(sw.dc.timer.Remaining())
	sw.remainingText.Refresh()

	switch sw.dc.timer.State() {
	case timekeep.Running:
		sw.timerButton.SetText("Pause")
	case timekeep.Paused:
		if sw.dc.timer.Completed() {
			sw.timerButton.SetText("Start")
		} else {
			sw.timerButton.SetText("Resume")
		}
	default:
		sw.timerButton.SetText("Start")
	}
}
