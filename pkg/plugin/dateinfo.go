package plugin

import (
	"fmt"

	"github.com/jonboulle/clockwork"
)

// DateInfoPlugin is the built-in example plugin: calendar facts about
// the current date.
type DateInfoPlugin struct {
	clock clockwork.Clock
}

// NewDateInfoPlugin creates the plugin. A nil clock uses the real
// clock.
func NewDateInfoPlugin(clock clockwork.Clock) *DateInfoPlugin {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DateInfoPlugin{clock: clock}
}

func (p *DateInfoPlugin) Name() string        { return "dateinfo" }
func (p *DateInfoPlugin) Version() string     { return "1.0.0" }
func (p *DateInfoPlugin) Description() string { return "Shows details about the current date" }

func (p *DateInfoPlugin) Initialize() error { return nil }
func (p *DateInfoPlugin) Cleanup()          {}

func (p *DateInfoPlugin) MenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Show Date Info", Action: "date_info"},
		{Label: "Show Week Number", Action: "week_number"},
	}
}

func (p *DateInfoPlugin) ExecuteAction(action string) (map[string]any, error) {
	now := p.clock.Now()
	switch action {
	case "date_info":
		return map[string]any{
			"date":        now.Format("2006-01-02"),
			"day_of_year": now.YearDay(),
			"week_day":    now.Weekday().String(),
			"month":       now.Month().String(),
			"quarter":     fmt.Sprintf("Q%d", (int(now.Month())-1)/3+1),
		}, nil
	case "week_number":
		year, week := now.ISOWeek()
		return map[string]any{
			"week_number": week,
			"year":        year,
		}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}
