// Package timestamps decides when a ledger entry happened and formats edit notes.
package timestamps

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// DateLayout is the layout of an entry's calendar date.
const DateLayout = "2006-01-02"

const (
	isoSeconds = "2006-01-02T15:04:05-07:00"
	isoMicros  = "2006-01-02T15:04:05.000000-07:00"
)

// clientLayouts are tried in order. Layouts without a zone are read as UTC.
var clientLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Clock returns the current instant.
type Clock func() time.Time

// Resolve picks the instant recorded on an entry: a parseable client timestamp
// is kept as sent, otherwise now in the named IANA zone, otherwise now in UTC.
// Bad input falls through silently.
func Resolve(clientTimestamp, timezone *string, now time.Time) time.Time {
	if clientTimestamp != nil {
		if ts, ok := ParseClient(*clientTimestamp); ok {
			return ts
		}
	}
	if timezone != nil {
		if loc, ok := loadZone(*timezone); ok {
			return now.In(loc)
		}
	}
	return now.UTC()
}

// ParseClient parses an ISO-8601 timestamp sent by a client.
func ParseClient(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range clientLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func loadZone(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	// "" and "Local" are accepted by LoadLocation but are not IANA names.
	if name == "" || name == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// FormatISO renders t with its UTC offset, adding microseconds only when present.
func FormatISO(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(isoMicros)
	}
	return t.Format(isoSeconds)
}

// EditNote prefixes note with the moment it was written.
func EditNote(at time.Time, note string) string {
	return FormatISO(at) + ": " + note
}

// IsDate reports whether value is a YYYY-MM-DD calendar date.
func IsDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
