// Package cloudsync pushes and pulls the settings snapshot to a
// user-configured endpoint. Every failure degrades to "sync
// inactive"; nothing here is fatal.
package cloudsync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Manager holds the sync endpoint configuration.
type Manager struct {
	client   *http.Client
	provider string
	url      string
	token    string
	mu       sync.RWMutex
}

// NewManager creates a disabled manager.
func NewManager() *Manager {
	return &Manager{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configure sets the provider name, endpoint URL and bearer token; a
// non-empty URL enables syncing.
func (m *Manager) Configure(provider, url, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provider = provider
	m.url = url
	m.token = token
}

// Enabled reports whether an endpoint is configured.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.url != ""
}

// Provider returns the configured provider name.
func (m *Manager) Provider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider
}

// Upload pushes the settings snapshot to the endpoint.
func (m *Manager) Upload(settings map[string]any) error {
	m.mu.RLock()
	endpoint, token := m.url, m.token
	m.mu.RUnlock()

	if endpoint == "" {
		return fmt.Errorf("cloud sync not configured")
	}

	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings for upload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("settings upload failed: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("settings upload rejected: %s", resp.Status)
	}
	return nil
}

// Download pulls the remote settings snapshot.
func (m *Manager) Download() (map[string]any, error) {
	m.mu.RLock()
	endpoint, token := m.url, m.token
	m.mu.RUnlock()

	if endpoint == "" {
		return nil, fmt.Errorf("cloud sync not configured")
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("settings download failed: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("settings download rejected: %s", resp.Status)
	}

	var remote map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("failed to decode remote settings: %w", err)
	}
	return remote, nil
}

// Sync merges the remote snapshot over local and returns the result.
// A failed download returns local unchanged.
func (m *Manager) Sync(local map[string]any) map[string]any {
	remote, err := m.Download()
	if err != nil {
		log.Warn().Err(err).Msg("cloud sync skipped")
		return local
	}

	merged := make(map[string]any, len(local))
	for k, v := range local {
		merged[k] = v
	}
	for k, v := range remote {
		merged[k] = v
	}
	return merged
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close cloud sync response body")
	}
}
