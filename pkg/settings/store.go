// Package settings persists the flat key/value application settings
// as a JSON document, merging stored values over built-in defaults.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

// Recognized setting keys. Unknown keys in the stored file are dropped
// on load; missing keys fall back to the defaults below.
const (
	KeyTheme              = "theme"
	KeyIs24Hour           = "is_24_hour"
	KeyTimezone           = "timezone"
	KeyClockStyle         = "clock_style"
	KeyFontFamily         = "font_family"
	KeyFontSize           = "font_size"
	KeyAlarmSound         = "alarm_sound"
	KeyVoiceEnabled       = "voice_enabled"
	KeyVoiceRate          = "voice_rate"
	KeyVoiceVolume        = "voice_volume"
	KeyShowSeconds        = "show_seconds"
	KeyShowDate           = "show_date"
	KeyWindowGeometry     = "window_geometry"
	KeySystemTrayEnabled  = "system_tray_enabled"
	KeyAutoSave           = "auto_save"
	KeyAutoStart          = "auto_start"
	KeyWeatherEnabled     = "weather_enabled"
	KeyWeatherAPIKey      = "weather_api_key"
	KeyWeatherLocation    = "weather_location"
	KeyCalendarEnabled    = "calendar_enabled"
	KeyCalendarSources    = "calendar_sources"
	KeyPluginsEnabled     = "plugins_enabled"
	KeyEnabledPlugins     = "enabled_plugins"
	KeyCloudSyncEnabled   = "cloud_sync_enabled"
	KeyCloudSyncURL       = "cloud_sync_url"
	KeyCloudSyncToken     = "cloud_sync_token"
	KeySchedulerEnabled   = "scheduler_enabled"
	KeySchedulerAutostart = "scheduler_autostart"
	KeyCompanionEnabled   = "companion_enabled"
	KeyCompanionPort      = "companion_port"
	KeyAlarms             = "alarms"
	KeySchedules          = "schedules"
)

// Defaults returns a fresh copy of the built-in default settings.
func Defaults() map[string]any {
	return map[string]any{
		KeyTheme:              "light",
		KeyIs24Hour:           true,
		KeyTimezone:           "Local",
		KeyClockStyle:         "digital",
		KeyFontFamily:         "Monospace",
		KeyFontSize:           42,
		KeyAlarmSound:         "default",
		KeyVoiceEnabled:       false,
		KeyVoiceRate:          150,
		KeyVoiceVolume:        0.9,
		KeyShowSeconds:        true,
		KeyShowDate:           true,
		KeyWindowGeometry:     "600x500",
		KeySystemTrayEnabled:  false,
		KeyAutoSave:           true,
		KeyAutoStart:          false,
		KeyWeatherEnabled:     false,
		KeyWeatherAPIKey:      "",
		KeyWeatherLocation:    "New York",
		KeyCalendarEnabled:    false,
		KeyCalendarSources:    "[]",
		KeyPluginsEnabled:     true,
		KeyEnabledPlugins:     "[]",
		KeyCloudSyncEnabled:   false,
		KeyCloudSyncURL:       "",
		KeyCloudSyncToken:     "",
		KeySchedulerEnabled:   false,
		KeySchedulerAutostart: true,
		KeyCompanionEnabled:   false,
		KeyCompanionPort:      8888,
		KeyAlarms:             "[]",
		KeySchedules:          "[]",
	}
}

// Store holds the in-memory settings mapping and writes it back to
// disk on every mutation. Loading never fails: a missing or corrupt
// file yields the defaults.
type Store struct {
	values map[string]any
	path   string
	mu     sync.RWMutex
}

// DefaultPath returns the settings file location under the user
// config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "deskclock", "settings.json")
}

// NewStore creates a store backed by the file at path and loads it.
// An empty path uses DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{path: path}
	s.Load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file, merging recognized stored values over
// the defaults. Decode failures and missing files fall back entirely
// to defaults; a stored value of the wrong type is replaced by the
// default for that key only.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read settings file, using defaults")
		}
		return
	}

	var stored map[string]any
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("settings file corrupt, using defaults")
		return
	}

	defaults := Defaults()
	for key, value := range stored {
		def, known := defaults[key]
		if !known {
			log.Debug().Str("key", key).Msg("ignoring unknown settings key")
			continue
		}
		coerced, ok := coerce(value, def)
		if !ok {
			log.Warn().Str("key", key).Msg("stored setting has wrong type, keeping default")
			continue
		}
		s.values[key] = coerced
	}
}

// coerce converts a JSON-decoded value to the type of the default for
// its key. JSON numbers always decode as float64, so integer defaults
// accept whole floats.
func coerce(value, def any) (any, bool) {
	switch def.(type) {
	case bool:
		v, ok := value.(bool)
		return v, ok
	case string:
		v, ok := value.(string)
		return v, ok
	case int:
		switch v := value.(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		}
		return nil, false
	case float64:
		v, ok := value.(float64)
		return v, ok
	}
	return value, true
}

// Save writes the current mapping to disk, creating the parent
// directory if needed.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Get returns the value for key, or nil for unrecognized keys.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set updates one setting and persists immediately when auto_save is
// on. Unrecognized keys are ignored.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	if _, known := Defaults()[key]; !known {
		s.mu.Unlock()
		log.Debug().Str("key", key).Msg("ignoring set of unknown settings key")
		return
	}
	s.values[key] = value
	autoSave, _ := s.values[KeyAutoSave].(bool)
	s.mu.Unlock()

	if autoSave {
		if err := s.Save(); err != nil {
			log.Warn().Err(err).Msg("failed to persist settings")
		}
	}
}

// Update applies multiple settings at once, then persists (once) when
// auto_save is on. Unrecognized keys and wrong-typed values are
// dropped, mirroring Load.
func (s *Store) Update(updates map[string]any) {
	defaults := Defaults()
	s.mu.Lock()
	for key, value := range updates {
		def, known := defaults[key]
		if !known {
			continue
		}
		if coerced, ok := coerce(value, def); ok {
			s.values[key] = coerced
		}
	}
	autoSave, _ := s.values[KeyAutoSave].(bool)
	s.mu.Unlock()

	if autoSave {
		if err := s.Save(); err != nil {
			log.Warn().Err(err).Msg("failed to persist settings")
		}
	}
}

// ResetToDefaults replaces the mapping with the defaults and persists.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	s.values = Defaults()
	s.mu.Unlock()

	if err := s.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to persist settings after reset")
	}
}

// All returns a copy of the current mapping.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Typed accessors. Each falls back to the key's default when the
// stored value has an unexpected type.

func (s *Store) Bool(key string) bool {
	if v, ok := s.Get(key).(bool); ok {
		return v
	}
	v, _ := Defaults()[key].(bool)
	return v
}

func (s *Store) String(key string) string {
	if v, ok := s.Get(key).(string); ok {
		return v
	}
	v, _ := Defaults()[key].(string)
	return v
}

func (s *Store) Int(key string) int {
	switch v := s.Get(key).(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	v, _ := Defaults()[key].(int)
	return v
}

func (s *Store) Float(key string) float64 {
	switch v := s.Get(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	v, _ := Defaults()[key].(float64)
	return v
}

// GetJSON decodes a JSON-string setting (the alarms, schedules and
// calendar_sources keys) into out. Empty or invalid payloads leave
// out untouched.
func (s *Store) GetJSON(key string, out any) {
	raw := s.String(key)
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to decode stored list, ignoring")
	}
}

// SetJSON encodes value as a JSON string under key and persists.
func (s *Store) SetJSON(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode list setting")
		return
	}
	s.Set(key, string(data))
}
