package utils

import (
	"errors"
	"fmt"
)

// Error kinds. HandleServiceError maps on these, so every specific error
// below wraps exactly one of them.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream error")
	ErrAuth            = errors.New("authentication error")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDatabaseError   = errors.New("database error")
)

var (
	ErrInvalidTripID        = fmt.Errorf("%w: invalid trip ID", ErrValidation)
	ErrInvalidUserID        = fmt.Errorf("%w: invalid user ID", ErrValidation)
	ErrInvalidDates         = fmt.Errorf("%w: invalid dates", ErrValidation)
	ErrEndBeforeStart       = fmt.Errorf("%w: end date cannot be before start date", ErrValidation)
	ErrMissingTripFields    = fmt.Errorf("%w: trip name and dates are required", ErrValidation)
	ErrBudgetRequired       = fmt.Errorf("%w: budget is required", ErrValidation)
	ErrPlaceIDRequired      = fmt.Errorf("%w: place ID is required", ErrValidation)
	ErrActivityNameRequired = fmt.Errorf("%w: activity name is required", ErrValidation)
	ErrInvalidActivityIndex = fmt.Errorf("%w: activity index must be an integer", ErrValidation)
	ErrInvalidExpense       = fmt.Errorf("%w: category, price, paidBy and splitBy are required", ErrValidation)
	ErrTripNotFound         = fmt.Errorf("trip %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrPayerNotFound        = fmt.Errorf("payer %w", ErrNotFound)
	ErrItineraryDayNotFound = fmt.Errorf("itinerary day %w", ErrNotFound)
	ErrAlreadyTraveler      = fmt.Errorf("%w: user is already a traveler", ErrConflict)
	ErrInvalidIdentityToken = fmt.Errorf("%w: invalid Google idToken", ErrAuth)
	ErrMailDelivery         = errors.New("failed to deliver email")
)

// UpstreamError reports a failed or unusable response from a third-party API.
// Details carries whatever the upstream sent back, when anything was sent.
type UpstreamError struct {
	Service    string
	StatusCode int
	Details    any
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
