package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avreline/deskclock/pkg/models"
)

type stubBackend struct {
	alarms   []models.Alarm
	settings map[string]any
	addErr   error
}

func (b *stubBackend) Status() map[string]any {
	return map[string]any{"app": "deskclock"}
}

func (b *stubBackend) TimePayload() map[string]any {
	return map[string]any{"time": "12:34:56", "timezone": "Local"}
}

func (b *stubBackend) Alarms() []models.Alarm {
	return b.alarms
}

func (b *stubBackend) AddAlarm(hour, minute int, label string, repeat bool) (*models.Alarm, error) {
	if b.addErr != nil {
		return nil, b.addErr
	}
	a := models.Alarm{
		ID:      int64(len(b.alarms) + 1),
		Hour:    hour,
		Minute:  minute,
		Label:   label,
		Repeat:  repeat,
		Enabled: true,
	}
	b.alarms = append(b.alarms, a)
	return &a, nil
}

func (b *stubBackend) Weather() models.WeatherReport {
	return models.WeatherReport{Location: "Testville", Condition: "Clear", Simulated: true}
}

func (b *stubBackend) CalendarEvents() []models.Event {
	return []models.Event{{ID: "e1", Title: "Standup"}}
}

func (b *stubBackend) UpdateSettings(values map[string]any) {
	b.settings = values
}

func newTestServer(backend Backend) *httptest.Server {
	return httptest.NewServer(NewServer(backend, 0, nil).Router())
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec // test URL
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data)) //nolint:gosec // test URL
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubBackend{})
	defer srv.Close()

	var status map[string]any
	code := getJSON(t, srv.URL+"/status", &status)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "deskclock", status["app"])
}

func TestTimeEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubBackend{})
	defer srv.Close()

	var payload map[string]any
	code := getJSON(t, srv.URL+"/time", &payload)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "12:34:56", payload["time"])
	assert.Equal(t, "Local", payload["timezone"])
}

func TestAlarmsEndpoint(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{alarms: []models.Alarm{
		{ID: 1, Hour: 7, Minute: 30, Label: "wake up", Enabled: true},
	}}
	srv := newTestServer(backend)
	defer srv.Close()

	var payload struct {
		Alarms []models.Alarm `json:"alarms"`
	}
	code := getJSON(t, srv.URL+"/alarms", &payload)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, payload.Alarms, 1)
	assert.Equal(t, "wake up", payload.Alarms[0].Label)
}

func TestAddAlarmCreated(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{}
	srv := newTestServer(backend)
	defer srv.Close()

	var created models.Alarm
	code := postJSON(t, srv.URL+"/alarm", map[string]any{
		"time":   "07:30",
		"label":  "gym",
		"repeat": true,
	}, &created)

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 7, created.Hour)
	assert.Equal(t, 30, created.Minute)
	assert.True(t, created.Repeat)
	require.Len(t, backend.alarms, 1)
}

func TestAddAlarmRejectsMalformedTime(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{}
	srv := newTestServer(backend)
	defer srv.Close()

	for _, bad := range []string{"", "25:00", "7", "seven thirty", "12:99"} {
		code := postJSON(t, srv.URL+"/alarm", map[string]any{"time": bad}, nil)
		assert.Equal(t, http.StatusBadRequest, code, "time %q must be rejected", bad)
	}
	assert.Empty(t, backend.alarms, "rejected alarms must not be stored")
}

func TestAddAlarmRejectsInvalidBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubBackend{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/alarm", "application/json", bytes.NewReader([]byte("{not json"))) //nolint:gosec // test URL
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWeatherEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubBackend{})
	defer srv.Close()

	var report models.WeatherReport
	code := getJSON(t, srv.URL+"/weather", &report)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Testville", report.Location)
	assert.True(t, report.Simulated)
}

func TestCalendarEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubBackend{})
	defer srv.Close()

	var payload struct {
		Events []models.Event `json:"events"`
	}
	code := getJSON(t, srv.URL+"/calendar", &payload)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, payload.Events, 1)
	assert.Equal(t, "Standup", payload.Events[0].Title)
}

func TestWebsocketStreamsEverySecond(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	srv := httptest.NewServer(NewServer(&stubBackend{}, 0, clock).Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	defer func() { _ = resp.Body.Close() }()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	// The first frame is written immediately, subsequent frames once
	// per tick. The stream must survive past the first frame.
	for i := 0; i < 3; i++ {
		var payload map[string]any
		require.NoError(t, conn.ReadJSON(&payload), "frame %d", i+1)
		assert.Equal(t, "12:34:56", payload["time"], "frame %d", i+1)
		clock.Advance(time.Second)
	}
}

func TestSettingsEndpoint(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{}
	srv := newTestServer(backend)
	defer srv.Close()

	code := postJSON(t, srv.URL+"/settings", map[string]any{"theme": "dark"}, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dark", backend.settings["theme"])
}
