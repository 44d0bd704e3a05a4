package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wanderlog/internal/models/db_models"
)

type TripResponse struct {
	ID            uuid.UUID                `json:"id"`
	TripName      string                   `json:"trip_name"`
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
	StartDay      string                   `json:"start_day"`
	EndDay        string                   `json:"end_day"`
	Background    string                   `json:"background"`
	HostID        uuid.UUID                `json:"host_id"`
	Travelers     []TravelerSummary        `json:"travelers"`
	Budget        decimal.Decimal          `json:"budget"`
	Notes         string                   `json:"notes"`
	Itinerary     []db_models.ItineraryDay `json:"itinerary"`
	PlacesToVisit []db_models.Place        `json:"places_to_visit"`
	Expenses      []db_models.Expense      `json:"expenses"`
}

type TravelerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Photo string    `json:"photo,omitempty"`
}

type BudgetResponse struct {
	Budget decimal.Decimal `json:"budget"`
}

type NoteResponse struct {
	Note string `json:"note"`
}

type ExpensesResponse struct {
	Expenses []db_models.Expense `json:"expenses"`
}

func BuildTripResponse(t *db_models.Trip) *TripResponse {
	travelers := make([]TravelerSummary, 0, len(t.Travelers))
	for _, u := range t.Travelers {
		travelers = append(travelers, TravelerSummary{ID: u.ID, Name: u.Name, Email: u.Email, Photo: u.Photo})
	}

	return &TripResponse{
		ID:            t.ID,
		TripName:      t.TripName,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		StartDay:      t.StartDay,
		EndDay:        t.EndDay,
		Background:    t.Background,
		HostID:        t.HostID,
		Travelers:     travelers,
		Budget:        t.Budget,
		Notes:         t.Notes,
		Itinerary:     nonNil(t.Itinerary),
		PlacesToVisit: nonNil(t.PlacesToVisit),
		Expenses:      nonNil(t.Expenses),
	}
}

func BuildTripListResponse(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *BuildTripResponse(&trips[i]))
	}
	return out
}

// nonNil keeps empty collections as [] rather than null in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
