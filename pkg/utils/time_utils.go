package utils

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form used for trip dates and itinerary keys.
const DateLayout = "2006-01-02"

// ParseTripDate accepts "2024-01-31" or a full RFC3339 timestamp and returns
// the calendar date at UTC midnight. A timestamp keeps the date as written,
// not as converted to UTC.
func ParseTripDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
