// Package tzone resolves the display timezone for the clock.
package tzone

import (
	"time"

	"github.com/rs/zerolog/log"
)

// LocalName is the pseudo-zone for the system local time.
const LocalName = "Local"

// Available lists the selectable zones: Local plus a curated set of
// common IANA names.
func Available() []string {
	return []string{
		LocalName,
		"UTC",
		"America/New_York",
		"America/Chicago",
		"America/Denver",
		"America/Los_Angeles",
		"Europe/London",
		"Europe/Paris",
		"Europe/Berlin",
		"Asia/Tokyo",
		"Asia/Shanghai",
		"Asia/Kolkata",
		"Australia/Sydney",
	}
}

// Valid reports whether name resolves to a loadable zone.
func Valid(name string) bool {
	if name == LocalName || name == "" {
		return true
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// Location resolves a zone name, falling back to the system local
// zone when the name is empty, "Local", or unknown.
func Location(name string) *time.Location {
	if name == "" || name == LocalName {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, falling back to local")
		return time.Local
	}
	return loc
}

// In converts t into the named zone.
func In(t time.Time, name string) time.Time {
	return t.In(Location(name))
}
