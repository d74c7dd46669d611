// Package api serves the mobile companion HTTP interface. The app
// controller implements Backend; the server never reaches into the
// GUI directly.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/models"
)

// Backend is the surface the companion endpoints read and mutate.
type Backend interface {
	Status() map[string]any
	TimePayload() map[string]any
	Alarms() []models.Alarm
	AddAlarm(hour, minute int, label string, repeat bool) (*models.Alarm, error)
	Weather() models.WeatherReport
	CalendarEvents() []models.Event
	UpdateSettings(values map[string]any)
}

// Server wraps the companion HTTP listener.
type Server struct {
	backend  Backend
	clock    clockwork.Clock
	validate *validator.Validate
	srv      *http.Server
	upgrader websocket.Upgrader
	port     int
}

// NewServer builds a server for the given port. A nil clock uses the
// real one.
func NewServer(backend Backend, port int, clock clockwork.Clock) *Server {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Server{
		backend:  backend,
		clock:    clock,
		validate: validator.New(),
		port:     port,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router assembles the chi routes. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/status", s.handleStatus)
	r.Get("/time", s.handleTime)
	r.Get("/alarms", s.handleAlarms)
	r.Get("/weather", s.handleWeather)
	r.Get("/calendar", s.handleCalendar)
	r.Post("/alarm", s.handleAddAlarm)
	r.Post("/settings", s.handleSettings)
	r.Get("/ws", s.handleWebsocket)

	return r
}

// Start begins serving in the background.
func (s *Server) Start() {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Router(),
	}

	go func() {
		log.Info().Int("port", s.port).Msg("companion API listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("companion API stopped")
		}
	}()
}

// Stop shuts the listener down, waiting briefly for in-flight
// requests.
func (s *Server) Stop() {
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("companion API shutdown")
	}
	s.srv = nil
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.backend.Status())
}

func (s *Server) handleTime(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.backend.TimePayload())
}

func (s *Server) handleAlarms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"alarms": s.backend.Alarms(),
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.backend.Weather())
}

func (s *Server) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"events": s.backend.CalendarEvents(),
	})
}

type addAlarmRequest struct {
	Time   string `json:"time" validate:"required"`
	Label  string `json:"label"`
	Repeat bool   `json:"repeat"`
}

func (s *Server) handleAddAlarm(w http.ResponseWriter, r *http.Request) {
	var req addAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "time is required")
		return
	}

	hour, minute, err := models.ParseAlarmTime(req.Time)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.backend.AddAlarm(hour, minute, req.Label, req.Repeat)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.backend.UpdateSettings(values)
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// handleWebsocket streams the time payload once a second until the
// client goes away. The loop must run inside the handler: the server
// cancels the request context as soon as the handler returns.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("websocket close")
		}
	}()

	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(s.backend.TimePayload()); err != nil {
			return
		}
		select {
		case <-ticker.Chan():
		case <-r.Context().Done():
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
