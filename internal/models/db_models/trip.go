package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Budgets and prices travel as JSON numbers, both on the wire and inside
	// the trip's JSON columns.
	decimal.MarshalJSONWithoutQuotes = true
}

// Trip is the aggregate root. Itinerary, places and expenses live inside
// the trip row and are only reachable through it.
type Trip struct {
	Entity
	TripName   string          `gorm:"not null" json:"trip_name"`
	StartDate  string          `gorm:"not null" json:"start_date"`
	EndDate    string          `gorm:"not null" json:"end_date"`
	StartDay   string          `json:"start_day"`
	EndDay     string          `json:"end_day"`
	Background string          `json:"background"`
	HostID     uuid.UUID       `gorm:"type:uuid;index" json:"host_id"`
	Travelers  []User          `gorm:"many2many:trip_travelers;constraint:OnDelete:CASCADE" json:"travelers"`
	Budget     decimal.Decimal `gorm:"type:numeric;default:0" json:"budget"`
	Notes      string          `gorm:"default:''" json:"notes"`

	Itinerary     []ItineraryDay `gorm:"serializer:json;type:jsonb" json:"itinerary"`
	PlacesToVisit []Place        `gorm:"serializer:json;type:jsonb" json:"places_to_visit"`
	Expenses      []Expense      `gorm:"serializer:json;type:jsonb" json:"expenses"`
}

// HasTraveler reports whether userID is among the trip's loaded travelers.
func (t *Trip) HasTraveler(userID uuid.UUID) bool {
	for _, u := range t.Travelers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// Day returns the itinerary entry whose date equals date exactly.
func (t *Trip) Day(date string) *ItineraryDay {
	for i := range t.Itinerary {
		if t.Itinerary[i].Date == date {
			return &t.Itinerary[i]
		}
	}
	return nil
}

type ItineraryDay struct {
	Date         string        `json:"date"`
	Activities   []Activity    `json:"activities"`
	PlaceDetails *PlaceDetails `json:"place_details,omitempty"`
}

type Activity struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
	PlaceDetails
}

type Place struct {
	Name string `json:"name"`
	PlaceDetails
}

// PlaceDetails is the enriched snapshot shared by places, activities and
// itinerary days.
type PlaceDetails struct {
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Website          string    `json:"website,omitempty"`
	OpeningHours     []string  `json:"opening_hours,omitempty"`
	Photos           []string  `json:"photos,omitempty"`
	Reviews          []Review  `json:"reviews,omitempty"`
	Types            []string  `json:"types,omitempty"`
	FormattedAddress string    `json:"formatted_address,omitempty"`
	BriefDescription string    `json:"brief_description,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
}

type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

type Geometry struct {
	Location LatLng   `json:"location"`
	Viewport Viewport `json:"viewport"`
}

type Expense struct {
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	PaidBy   string          `json:"paid_by"`
	SplitBy  string          `json:"split_by"`
}
