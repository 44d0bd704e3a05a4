package db_models

import (
	"time"

	"wanderlog/pkg/utils"
)

// GenerateItinerary returns one empty day per calendar day from start to end
// inclusive. Days advance with AddDate in UTC so DST never skips or repeats
// a date. An end before start yields an empty itinerary.
func GenerateItinerary(start, end time.Time) []ItineraryDay {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]ItineraryDay, 0)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, ItineraryDay{
			Date:       utils.FormatDate(d),
			Activities: []Activity{},
		})
	}
	return days
}
