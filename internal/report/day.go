// Package report implements the reusable report workspace: declarative
// filter fields, query building, the per-page data controller and the
// modal action forms every report route shares.
package report

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format filter fields hold.
const DateLayout = "2006-01-02"

// isoMillis is the wire format for normalized day bounds. Times are
// always UTC so the literal Z suffix is correct.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Today returns the current calendar day in the filter field format.
// Date-range filters default to it.
func Today() string {
	return time.Now().Format(DateLayout)
}

// StartOfDay normalizes a calendar day to its first instant,
// 00:00:00.000 UTC, in ISO form.
func StartOfDay(day string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t.Format(isoMillis), nil
}

// EndOfDay normalizes a calendar day to its last representable instant,
// 23:59:59.999 UTC, in ISO form.
func EndOfDay(day string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t.Add(24*time.Hour - time.Millisecond).Format(isoMillis), nil
}
