package calendar

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/teambition/rrule-go"

	"github.com/avreline/deskclock/pkg/models"
)

// expandRecurrence materializes the instances of a recurring event
// that start inside [from, until).
func expandRecurrence(base models.Event, ruleText string, from, until time.Time) []models.Event {
	rule, err := rrule.StrToRRule(ruleText)
	if err != nil {
		log.Warn().Err(err).Str("event", base.Title).Str("rrule", ruleText).Msg("unsupported recurrence rule, skipping")
		return nil
	}
	rule.DTStart(base.StartTime)

	duration := base.EndTime.Sub(base.StartTime)
	var instances []models.Event
	for _, start := range rule.Between(from, until, true) {
		instance := base
		instance.StartTime = start
		instance.EndTime = start.Add(duration)
		instance.ID = base.ID + "-" + start.Format(time.RFC3339)
		instances = append(instances, instance)
	}
	return instances
}
