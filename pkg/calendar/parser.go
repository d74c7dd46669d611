package calendar

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/avreline/deskclock/pkg/models"
)

func parseEvent(comp *ical.Component) models.Event {
	event := models.Event{}

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		event.ID = uidProp.Value
	}
	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		event.Title = summaryProp.Value
	}
	if descProp := comp.Props.Get(ical.PropDescription); descProp != nil {
		event.Description = descProp.Value
	}
	if locProp := comp.Props.Get(ical.PropLocation); locProp != nil {
		event.Location = locProp.Value
	}
	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		event.Status = statusProp.Value
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		if t, err := parseDateTimeProp(startProp); err == nil {
			event.StartTime = t
		}
	}
	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProp(endProp); err == nil {
			event.EndTime = t
		}
	}

	return event
}

func parseDateTimeProp(prop *ical.Prop) (time.Time, error) {
	// Standard decoding with the local zone first
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	// Fall back to parsing the raw value in common layouts
	layouts := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value %q", prop.Value)
}
