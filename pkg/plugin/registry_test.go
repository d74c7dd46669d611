package plugin

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPlugin tracks lifecycle calls.
type countingPlugin struct {
	name        string
	initErr     error
	initialized int
	cleanedUp   int
}

func (p *countingPlugin) Name() string        { return p.name }
func (p *countingPlugin) Version() string     { return "0.1.0" }
func (p *countingPlugin) Description() string { return "test plugin" }

func (p *countingPlugin) Initialize() error {
	p.initialized++
	return p.initErr
}

func (p *countingPlugin) Cleanup() { p.cleanedUp++ }

func (p *countingPlugin) MenuItems() []MenuItem { return nil }

func (p *countingPlugin) ExecuteAction(action string) (map[string]any, error) {
	return map[string]any{"action": action}, nil
}

func TestEnableDisableLifecycle(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	p := &countingPlugin{name: "test"}
	r.Register(p)

	assert.Equal(t, []string{"test"}, r.Names())
	assert.False(t, r.IsEnabled("test"))

	require.NoError(t, r.Enable("test"))
	assert.True(t, r.IsEnabled("test"))
	assert.Equal(t, 1, p.initialized)

	// Enabling twice must not re-initialize
	require.NoError(t, r.Enable("test"))
	assert.Equal(t, 1, p.initialized)

	r.Disable("test")
	assert.False(t, r.IsEnabled("test"))
	assert.Equal(t, 1, p.cleanedUp)

	r.Disable("test")
	assert.Equal(t, 1, p.cleanedUp)
}

func TestEnableFailsWhenInitializeFails(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&countingPlugin{name: "broken", initErr: fmt.Errorf("no database")})

	require.Error(t, r.Enable("broken"))
	assert.False(t, r.IsEnabled("broken"))
	require.Error(t, r.Enable("missing"))
}

func TestExecuteRequiresEnabledPlugin(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&countingPlugin{name: "test"})

	_, err := r.Execute("test", "anything")
	require.Error(t, err, "disabled plugin must not execute")

	require.NoError(t, r.Enable("test"))
	result, err := r.Execute("test", "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", result["action"])

	_, err = r.Execute("missing", "anything")
	require.Error(t, err)
}

func TestShutdownDisablesEverything(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	p1 := &countingPlugin{name: "one"}
	p2 := &countingPlugin{name: "two"}
	r.Register(p1)
	r.Register(p2)
	require.NoError(t, r.Enable("one"))
	require.NoError(t, r.Enable("two"))

	r.Shutdown()
	assert.Empty(t, r.Enabled())
	assert.Equal(t, 1, p1.cleanedUp)
	assert.Equal(t, 1, p2.cleanedUp)
}

func TestDateInfoActions(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	p := NewDateInfoPlugin(clock)

	assert.Len(t, p.MenuItems(), 2)

	info, err := p.ExecuteAction("date_info")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", info["date"])
	assert.Equal(t, "Sunday", info["week_day"])
	assert.Equal(t, "June", info["month"])
	assert.Equal(t, "Q2", info["quarter"])
	assert.Equal(t, 166, info["day_of_year"])

	week, err := p.ExecuteAction("week_number")
	require.NoError(t, err)
	assert.Equal(t, 24, week["week_number"])
	assert.Equal(t, 2025, week["year"])

	_, err = p.ExecuteAction("nope")
	require.Error(t, err)
}
