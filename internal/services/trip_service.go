package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	ListTripsForUser(ctx context.Context, userID string) ([]db_models.Trip, error)
	GetItinerary(ctx context.Context, tripID string) ([]db_models.ItineraryDay, error)
	GetPlacesToVisit(ctx context.Context, tripID string) ([]db_models.Place, error)
	GetNote(ctx context.Context, tripID string) (string, error)
	SetNote(ctx context.Context, tripID, note string) (string, error)
	// SetBudget overwrites the budget. It is never derived from expenses.
	SetBudget(ctx context.Context, tripID string, budget *decimal.Decimal) (decimal.Decimal, error)
	AddTraveler(ctx context.Context, tripID, userID string) (*db_models.Trip, error)
	AddPlace(ctx context.Context, tripID, placeID string) (*db_models.Trip, error)
	AddActivityToDay(ctx context.Context, tripID, date string, req request_models.AddActivityRequest) (*db_models.Trip, error)
	RemoveActivity(ctx context.Context, tripID, date string, index int) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	userRepo repositories.UserRepository
	places   PlacesServiceInterface
	logger   *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	places PlacesServiceInterface,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		userRepo: userRepo,
		places:   places,
		logger:   logger.Named("trip"),
	}
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	if strings.TrimSpace(req.TripName) == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, utils.ErrMissingTripFields
	}

	start, err := utils.ParseTripDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDates
	}
	end, err := utils.ParseTripDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDates
	}
	if end.Before(start) {
		return nil, utils.ErrEndBeforeStart
	}

	hostID, err := uuid.Parse(req.Host)
	if err != nil {
		return nil, utils.ErrInvalidUserID
	}
	host, err := s.userRepo.FindByID(ctx, hostID)
	if err != nil {
		s.logger.Error("find host", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if host == nil {
		return nil, utils.ErrUserNotFound
	}

	trip := &db_models.Trip{
		TripName:      strings.TrimSpace(req.TripName),
		StartDate:     utils.FormatDate(start),
		EndDate:       utils.FormatDate(end),
		StartDay:      req.StartDay,
		EndDay:        req.EndDay,
		Background:    req.Background,
		Itinerary:     db_models.GenerateItinerary(start, end),
		PlacesToVisit: []db_models.Place{},
		Expenses:      []db_models.Expense{},
	}
	if err := s.tripRepo.Create(ctx, trip, host.ID); err != nil {
		s.logger.Error("create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	trip.Travelers = []db_models.User{*host}

	s.logger.Info("trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.Int("days", len(trip.Itinerary)),
	)
	return trip, nil
}

func (s *TripService) ListTripsForUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidUserID
	}

	trips, err := s.tripRepo.ListForUser(ctx, id)
	if err != nil {
		s.logger.Error("list trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) GetItinerary(ctx context.Context, tripID string) ([]db_models.ItineraryDay, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return trip.Itinerary, nil
}

func (s *TripService) GetPlacesToVisit(ctx context.Context, tripID string) ([]db_models.Place, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return trip.PlacesToVisit, nil
}

func (s *TripService) GetNote(ctx context.Context, tripID string) (string, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return "", err
	}
	return trip.Notes, nil
}

func (s *TripService) SetNote(ctx context.Context, tripID, note string) (string, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return "", err
	}

	ok, err := s.tripRepo.SetNotes(ctx, id, note)
	if err != nil {
		s.logger.Error("set notes", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if !ok {
		return "", utils.ErrTripNotFound
	}
	return note, nil
}

func (s *TripService) SetBudget(ctx context.Context, tripID string, budget *decimal.Decimal) (decimal.Decimal, error) {
	if budget == nil || budget.IsZero() {
		return decimal.Zero, utils.ErrBudgetRequired
	}
	id, err := parseTripID(tripID)
	if err != nil {
		return decimal.Zero, err
	}

	ok, err := s.tripRepo.SetBudget(ctx, id, *budget)
	if err != nil {
		s.logger.Error("set budget", zap.Error(err))
		return decimal.Zero, utils.ErrDatabaseError
	}
	if !ok {
		return decimal.Zero, utils.ErrTripNotFound
	}
	return *budget, nil
}

func (s *TripService) AddTraveler(ctx context.Context, tripID, userID string) (*db_models.Trip, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidUserID
	}

	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		s.logger.Error("find user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	added, err := s.tripRepo.AddTraveler(ctx, id, user.ID)
	if err != nil {
		s.logger.Error("add traveler", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if !added {
		return nil, utils.ErrAlreadyTraveler
	}

	updated, err := s.tripRepo.FindByIDWithTravelers(ctx, id)
	if err != nil || updated == nil {
		s.logger.Error("reload trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *TripService) AddPlace(ctx context.Context, tripID, placeID string) (*db_models.Trip, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, utils.ErrPlaceIDRequired
	}
	if _, err := s.loadTrip(ctx, tripID); err != nil {
		return nil, err
	}

	place, err := s.places.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, tripID, func(t *db_models.Trip) error {
		t.PlacesToVisit = append(t.PlacesToVisit, *place)
		return nil
	})
}

// AddActivityToDay appends an activity to the day matching date exactly
// and makes its details the day's snapshot.
func (s *TripService) AddActivityToDay(ctx context.Context, tripID, date string, req request_models.AddActivityRequest) (*db_models.Trip, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, utils.ErrActivityNameRequired
	}

	return s.update(ctx, tripID, func(t *db_models.Trip) error {
		day := t.Day(date)
		if day == nil {
			return utils.ErrItineraryDayNotFound
		}

		details := req.PlaceDetails
		day.PlaceDetails = &details

		activityDate := req.Date
		if activityDate == "" {
			activityDate = date
		}
		day.Activities = append(day.Activities, db_models.Activity{
			Name:         req.Name,
			Date:         activityDate,
			PlaceDetails: details,
		})
		return nil
	})
}

func (s *TripService) RemoveActivity(ctx context.Context, tripID, date string, index int) (*db_models.Trip, error) {
	return s.update(ctx, tripID, func(t *db_models.Trip) error {
		day := t.Day(date)
		if day == nil {
			return utils.ErrItineraryDayNotFound
		}
		if index < 0 || index >= len(day.Activities) {
			return fmt.Errorf("%w: activity %d does not exist on %s (%d activities)",
				utils.ErrIndexOutOfRange, index, date, len(day.Activities))
		}

		day.Activities = append(day.Activities[:index], day.Activities[index+1:]...)
		return nil
	})
}

// update runs fn against the stored trip inside the repository's
// read-modify-write transaction.
func (s *TripService) update(ctx context.Context, tripID string, fn func(*db_models.Trip) error) (*db_models.Trip, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	var fnErr error
	trip, err := s.tripRepo.UpdateTrip(ctx, id, func(t *db_models.Trip) error {
		fnErr = fn(t)
		return fnErr
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		s.logger.Error("update trip", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) loadTrip(ctx context.Context, tripID string) (*db_models.Trip, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find trip", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func parseTripID(tripID string) (uuid.UUID, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidTripID
	}
	return id, nil
}
