// Package plugin hosts the in-process capability registry. Plugins
// are compiled in and registered by name; loading external code is
// out of scope.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// MenuItem is one action a plugin contributes to the Tools menu.
type MenuItem struct {
	Label  string
	Action string
}

// Plugin is the capability interface every plugin implements.
type Plugin interface {
	Name() string
	Version() string
	Description() string
	// Initialize is called when the plugin is enabled.
	Initialize() error
	// Cleanup is called when the plugin is disabled.
	Cleanup()
	// MenuItems lists the actions the plugin contributes.
	MenuItems() []MenuItem
	// ExecuteAction runs one of the plugin's actions and returns a
	// display payload.
	ExecuteAction(action string) (map[string]any, error)
}

// Registry tracks registered plugins and which are enabled.
type Registry struct {
	plugins map[string]Plugin
	enabled map[string]bool
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
		enabled: make(map[string]bool),
	}
}

// Register adds a plugin, disabled. Re-registering a name replaces
// the previous plugin.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[p.Name()] = p
	log.Debug().Str("plugin", p.Name()).Str("version", p.Version()).Msg("plugin registered")
}

// Names returns all registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a registered plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Enable initializes a plugin. Enabling an already-enabled plugin is
// a no-op.
func (r *Registry) Enable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plugins[name]
	if !ok {
		return fmt.Errorf("unknown plugin %q", name)
	}
	if r.enabled[name] {
		return nil
	}
	if err := p.Initialize(); err != nil {
		return fmt.Errorf("plugin %q failed to initialize: %w", name, err)
	}
	r.enabled[name] = true
	log.Info().Str("plugin", name).Msg("plugin enabled")
	return nil
}

// Disable cleans up an enabled plugin. Unknown or disabled names are
// a no-op.
func (r *Registry) Disable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled[name] {
		return
	}
	if p, ok := r.plugins[name]; ok {
		p.Cleanup()
	}
	delete(r.enabled, name)
	log.Info().Str("plugin", name).Msg("plugin disabled")
}

// Enabled returns the names of enabled plugins, sorted.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.enabled))
	for name := range r.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEnabled reports whether the named plugin is enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[name]
}

// Shutdown cleans up every enabled plugin.
func (r *Registry) Shutdown() {
	for _, name := range r.Enabled() {
		r.Disable(name)
	}
}

// Execute runs an action on an enabled plugin.
func (r *Registry) Execute(name, action string) (map[string]any, error) {
	r.mu.RLock()
	p, ok := r.plugins[name]
	enabled := r.enabled[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown plugin %q", name)
	}
	if !enabled {
		return nil, fmt.Errorf("plugin %q is not enabled", name)
	}
	return p.ExecuteAction(action)
}
