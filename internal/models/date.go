package models

import (
	"errors"
	"time"
)

// DateLayout is the rendering used for every date in API responses,
// e.g. "Sun Jan 15 2023".
const DateLayout = "Mon Jan 02 2006"

// ErrUnparsableDate is returned when a client-supplied date matches no
// accepted layout.
var ErrUnparsableDate = errors.New("unparsable date")

// Layouts accepted for client-supplied dates.
var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a client-supplied date string in UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableDate
}

// FormatDate renders a date for API responses.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
