package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/alarm"
	"github.com/avreline/deskclock/pkg/api"
	"github.com/avreline/deskclock/pkg/calendar"
	"github.com/avreline/deskclock/pkg/cloudsync"
	"github.com/avreline/deskclock/pkg/face"
	"github.com/avreline/deskclock/pkg/models"
	"github.com/avreline/deskclock/pkg/plugin"
	"github.com/avreline/deskclock/pkg/sched"
	"github.com/avreline/deskclock/pkg/settings"
	"github.com/avreline/deskclock/pkg/timekeep"
	"github.com/avreline/deskclock/pkg/voice"
	"github.com/avreline/deskclock/pkg/weather"
)

type DeskClock struct {
	app       fyne.App
	clock     clockwork.Clock
	settings  *settings.Store
	alarms    *alarm.Manager
	scheduler *sched.Scheduler
	stopwatch *timekeep.Stopwatch
	timer     *timekeep.Timer
	faces     *face.Manager
	announcer *voice.SystemAnnouncer
	weather   *weather.Manager
	calendar  *calendar.Manager
	plugins   *plugin.Registry
	cloud     *cloudsync.Manager
	companion *api.Server

	clockWindow     *ClockWindow
	alarmWindow     *AlarmWindow
	stopwatchWindow *StopwatchWindow
	settingsWindow  *SettingsWindow

	tickTicker    *time.Ticker
	syncTicker    *time.Ticker
	stopWatching  func()
	lastVoiceHour int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dc := &DeskClock{
		app:           app.New(),
		clock:         clockwork.NewRealClock(),
		lastVoiceHour: -1,
	}

	if err := dc.initialize(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	dc.run()
}

func (dc *DeskClock) initialize() error {
	dc.settings = settings.NewStore(settings.DefaultPath())
	dc.faces = face.NewManager()
	dc.faces.SetCurrent(dc.settings.String(settings.KeyClockStyle))

	dc.alarms = alarm.NewManager(dc.clock, dc.onAlarmFired)
	dc.scheduler = sched.NewScheduler(dc.clock, dc.onScheduleFired)
	dc.stopwatch = timekeep.NewStopwatch(dc.clock)
	dc.timer = timekeep.NewTimer(dc.clock, dc.onTimerComplete)

	dc.announcer = voice.NewSystemAnnouncer(
		dc.settings.Int(settings.KeyVoiceRate),
		dc.settings.Float(settings.KeyVoiceVolume),
	)
	dc.weather = weather.NewManager(dc.clock)
	dc.calendar = calendar.NewManager(dc.clock)
	dc.cloud = cloudsync.NewManager()

	dc.plugins = plugin.NewRegistry()
	dc.plugins.Register(plugin.NewDateInfoPlugin(dc.clock))

	dc.restoreState()
	dc.applyIntegrations()

	// Sync autostart state with settings on startup
	if err := setupAutostart(dc.settings.Bool(settings.KeyAutoStart)); err != nil {
		log.Warn().Err(err).Msg("failed to setup autostart")
	}

	dc.applyTheme()
	dc.setupSystemTray()
	dc.showClockWindow()
	dc.startTicker()
	dc.startBackgroundSync()
	dc.watchSettingsFile()

	if dc.settings.Bool(settings.KeySchedulerAutostart) || dc.settings.Bool(settings.KeySchedulerEnabled) {
		dc.scheduler.Start()
	}
	if dc.settings.Bool(settings.KeyCompanionEnabled) {
		dc.startCompanion()
	}

	return nil
}

func (dc *DeskClock) run() {
	dc.app.Run()
}

// restoreState loads alarms and schedules persisted inside the
// settings file back into their managers.
func (dc *DeskClock) restoreState() {
	var alarms []models.Alarm
	dc.settings.GetJSON(settings.KeyAlarms, &alarms)
	dc.alarms.Restore(alarms)

	var schedules []models.Schedule
	dc.settings.GetJSON(settings.KeySchedules, &schedules)
	dc.scheduler.Restore(schedules)
}

func (dc *DeskClock) persistAlarms() {
	dc.settings.SetJSON(settings.KeyAlarms, dc.alarms.List())
}

func (dc *DeskClock) persistSchedules() {
	dc.settings.SetJSON(settings.KeySchedules, dc.scheduler.List())
}

// applyIntegrations pushes integration settings into their managers.
// Called at startup and again after any settings change.
func (dc *DeskClock) applyIntegrations() {
	if dc.settings.Bool(settings.KeyWeatherEnabled) {
		dc.weather.SetAPIKey(dc.settings.String(settings.KeyWeatherAPIKey))
	} else {
		dc.weather.SetAPIKey("")
	}
	dc.weather.SetLocation(dc.settings.String(settings.KeyWeatherLocation))

	dc.calendar.SetEnabled(dc.settings.Bool(settings.KeyCalendarEnabled))
	var sources []models.CalendarSource
	dc.settings.GetJSON(settings.KeyCalendarSources, &sources)
	dc.calendar.SetSources(sources)

	if dc.settings.Bool(settings.KeyCloudSyncEnabled) {
		dc.cloud.Configure("http",
			dc.settings.String(settings.KeyCloudSyncURL),
			dc.settings.String(settings.KeyCloudSyncToken))
	} else {
		dc.cloud.Configure("", "", "")
	}

	if dc.settings.Bool(settings.KeyPluginsEnabled) {
		var enabled []string
		dc.settings.GetJSON(settings.KeyEnabledPlugins, &enabled)
		for _, name := range enabled {
			if err := dc.plugins.Enable(name); err != nil {
				log.Warn().Err(err).Str("plugin", name).Msg("failed to enable plugin")
			}
		}
	}
}

func (dc *DeskClock) startCompanion() {
	if dc.companion != nil {
		return
	}
	dc.companion = api.NewServer(dc, dc.settings.Int(settings.KeyCompanionPort), dc.clock)
	dc.companion.Start()
}

func (dc *DeskClock) stopCompanion() {
	if dc.companion == nil {
		return
	}
	dc.companion.Stop()
	dc.companion = nil
}

// startBackgroundSync refreshes weather and calendar periodically,
// with an initial synchronous pass so first paint has data.
func (dc *DeskClock) startBackgroundSync() {
	dc.syncWeatherAndCalendar()

	dc.syncTicker = time.NewTicker(30 * time.Minute)
	go func() {
		for range dc.syncTicker.C {
			dc.syncWeatherAndCalendar()
		}
	}()
}

func (dc *DeskClock) syncWeatherAndCalendar() {
	if dc.settings.Bool(settings.KeyWeatherEnabled) {
		dc.weather.Update()
	}
	dc.calendar.Sync()
	dc.updateSystemTrayMenu()
}

// watchSettingsFile reloads on external edits so a change made by the
// companion API or a text editor shows up without a restart.
func (dc *DeskClock) watchSettingsFile() {
	stop, err := dc.settings.Watch(func() {
		dc.applyIntegrations()
		fyne.Do(func() {
			if dc.clockWindow != nil {
				dc.clockWindow.Refresh()
			}
		})
	})
	if err != nil {
		log.Warn().Err(err).Msg("settings file watch unavailable")
		return
	}
	dc.stopWatching = stop
}

func (dc *DeskClock) onAlarmFired(a models.Alarm) {
	dc.persistAlarms()
	showRingingWindow(dc, a)
}

func (dc *DeskClock) onScheduleFired(s models.Schedule) {
	log.Info().Str("name", s.Name).Str("action", string(s.Action)).Msg("schedule fired")

	switch s.Action {
	case models.ActionSound:
		player := dc.playAlarmSound()
		if player != nil {
			go func() {
				time.Sleep(5 * time.Second)
				player.Stop()
			}()
		}
	case models.ActionVoice:
		if dc.announcer.Enabled() && dc.settings.Bool(settings.KeyVoiceEnabled) {
			dc.announcer.Speak(s.Message)
		}
	default:
		dc.app.SendNotification(fyne.NewNotification(s.Name, s.Message))
	}
}

func (dc *DeskClock) onTimerComplete() {
	dc.app.SendNotification(fyne.NewNotification("Timer", "Countdown finished"))
	player := dc.playAlarmSound()
	if player != nil {
		go func() {
			time.Sleep(5 * time.Second)
			player.Stop()
		}()
	}
}

func (dc *DeskClock) quit() {
	if dc.tickTicker != nil {
		dc.tickTicker.Stop()
	}
	if dc.syncTicker != nil {
		dc.syncTicker.Stop()
	}
	if dc.stopWatching != nil {
		dc.stopWatching()
	}
	dc.stopCompanion()
	dc.plugins.Shutdown()
	if dc.clockWindow != nil {
		dc.clockWindow.saveGeometry()
	}
	if err := dc.settings.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to save settings on exit")
	}
	dc.app.Quit()
}
