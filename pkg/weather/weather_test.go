package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledManagerFallsBackToSimulated(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC))
	m := NewManager(clock)
	assert.False(t, m.Enabled())
	m.SetLocation("Springfield")

	report := m.Current()
	assert.True(t, report.Simulated)
	assert.Equal(t, "Springfield", report.Location)
	assert.NotEmpty(t, report.Condition)
	assert.Equal(t, clock.Now(), report.FetchedAt)
}

func TestUpdateFetchesFromProvider(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather": [{"main": "Drizzle"}],
			"main": {"temp": 18.5, "humidity": 72},
			"wind": {"speed": 4.2}
		}`))
	}))
	defer srv.Close()

	m := NewManager(clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)))
	m.endpoint = srv.URL
	m.SetAPIKey("test-key")
	m.SetLocation("Berlin")
	require.True(t, m.Enabled())

	m.Update()
	report := m.Current()

	assert.False(t, report.Simulated)
	assert.Equal(t, "Drizzle", report.Condition)
	assert.InDelta(t, 18.5, report.Temperature, 0.001)
	assert.Equal(t, 72, report.Humidity)
	assert.InDelta(t, 4.2, report.WindSpeed, 0.001)
}

func TestProviderErrorFallsBackToSimulated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewManager(clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)))
	m.endpoint = srv.URL
	m.SetAPIKey("bad-key")
	m.SetLocation("Nowhere")

	m.Update()
	report := m.Current()
	assert.True(t, report.Simulated)
	assert.Equal(t, "Nowhere", report.Location)
}
