package request_models

import (
	"github.com/shopspring/decimal"

	"wanderlog/internal/models/db_models"
)

type CreateTripRequest struct {
	TripName   string `json:"trip_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	StartDay   string `json:"start_day"`
	EndDay     string `json:"end_day"`
	Background string `json:"background"`
	Host       string `json:"host" binding:"required,uuid"`
}

// Budget is checked by the service so a missing and a zero budget get the
// same answer.
type SetBudgetRequest struct {
	Budget *decimal.Decimal `json:"budget"`
}

type SetNoteRequest struct {
	Note string `json:"note"`
}

type AddPlaceRequest struct {
	PlaceID string `json:"place_id"`
}

type AddTravelerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// AddActivityRequest is the place a client drops onto an itinerary day,
// usually one it previously got back from addPlace.
type AddActivityRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date"`
	db_models.PlaceDetails
}
