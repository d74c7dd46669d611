// Package weather fetches a current-conditions snapshot for the
// clock's weather panel. Any fetch problem degrades to a simulated
// report; the feature never fails the caller.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// Manager is enabled by setting an API key and caches the last report.
type Manager struct {
	clock    clockwork.Clock
	client   *http.Client
	current  *models.WeatherReport
	endpoint string
	apiKey   string
	location string
	mu       sync.RWMutex
}

// NewManager creates a disabled manager. A nil clock uses the real
// clock.
func NewManager(clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		clock:    clock,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: defaultEndpoint,
		location: "Unknown",
	}
}

// SetAPIKey stores the provider key; a non-empty key enables the
// feature.
func (m *Manager) SetAPIKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiKey = key
}

// Enabled reports whether an API key is configured.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.apiKey != ""
}

// SetLocation changes the report location.
func (m *Manager) SetLocation(location string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.location = location
}

// Location returns the configured location.
func (m *Manager) Location() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.location
}

// Update refreshes the cached report. A failed or unconfigured fetch
// falls back to a simulated snapshot so the panel always has data.
func (m *Manager) Update() {
	m.mu.RLock()
	apiKey := m.apiKey
	location := m.location
	m.mu.RUnlock()

	report, err := m.fetchCurrent(apiKey, location)
	if err != nil {
		log.Debug().Err(err).Str("location", location).Msg("weather fetch failed, using simulated report")
		report = m.simulated(location)
	}

	m.mu.Lock()
	m.current = report
	m.mu.Unlock()
}

// Current returns the last report, updating first if none is cached.
func (m *Manager) Current() models.WeatherReport {
	m.mu.RLock()
	cached := m.current
	m.mu.RUnlock()

	if cached == nil {
		m.Update()
		m.mu.RLock()
		cached = m.current
		m.mu.RUnlock()
	}
	return *cached
}

// owmResponse is the subset of the provider payload the clock shows.
type owmResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (m *Manager) fetchCurrent(apiKey, location string) (*models.WeatherReport, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no weather API key configured")
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", apiKey)
	query.Set("units", "metric")

	resp, err := m.client.Get(m.endpoint + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close weather response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %s", resp.Status)
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition := "Unknown"
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0].Main
	}

	return &models.WeatherReport{
		FetchedAt:   m.clock.Now(),
		Location:    location,
		Condition:   condition,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}, nil
}

// simulated produces a plausible placeholder report keyed off the
// hour so the display varies over a day.
func (m *Manager) simulated(location string) *models.WeatherReport {
	now := m.clock.Now()
	conditions := []string{"Clear", "Clouds", "Rain", "Clear", "Clouds", "Clear"}
	return &models.WeatherReport{
		FetchedAt:   now,
		Location:    location,
		Condition:   conditions[now.Hour()%len(conditions)],
		Temperature: 15 + float64(now.Hour()%10),
		Humidity:    50 + now.Hour()%30,
		WindSpeed:   3.5,
		Simulated:   true,
	}
}
