package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadTimestamp is returned when timestamp text cannot be interpreted as a
// date/time in any accepted layout.
var ErrBadTimestamp = errors.New("unparseable timestamp")

const secondsPerDay = 86400.0

// Accepted layouts, most specific first. Layouts without a zone are
// interpreted as UTC (time.Parse already does this).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-style date or date-time string.
// A trailing "Z" means UTC; text with no zone designator is treated as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrBadTimestamp)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}

// AgeInDays returns the elapsed time from at to now in 86400-second days,
// floored at zero. A future timestamp has age 0, never a negative value.
// A zero now means the current wall-clock instant.
func AgeInDays(at, now time.Time) float64 {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	days := now.Sub(at).Seconds() / secondsPerDay
	if days < 0 {
		return 0
	}
	return days
}

// AgeInDaysString parses timestamp text and returns its age relative to now.
func AgeInDaysString(s string, now time.Time) (float64, error) {
	at, err := ParseTimestamp(s)
	if err != nil {
		return 0, err
	}
	return AgeInDays(at, now), nil
}
