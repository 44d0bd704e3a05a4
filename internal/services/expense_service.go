package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type ExpenseServiceInterface interface {
	// AddExpense appends to the trip's ledger once the payer resolves to a
	// known user, by display name or Google id.
	AddExpense(ctx context.Context, tripID string, req request_models.AddExpenseRequest) (*db_models.Trip, error)
	GetExpenses(ctx context.Context, tripID string) ([]db_models.Expense, error)
}

type ExpenseService struct {
	tripRepo repositories.TripRepository
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewExpenseService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		tripRepo: tripRepo,
		userRepo: userRepo,
		logger:   logger.Named("expense"),
	}
}

func (s *ExpenseService) AddExpense(ctx context.Context, tripID string, req request_models.AddExpenseRequest) (*db_models.Trip, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Category) == "" || req.Price == nil || req.PaidBy == "" || req.SplitBy == "" {
		return nil, utils.ErrInvalidExpense
	}

	payer, err := s.userRepo.FindByNameOrGoogleID(ctx, req.PaidBy)
	if err != nil {
		s.logger.Error("resolve payer", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if payer == nil {
		return nil, utils.ErrPayerNotFound
	}

	expense := db_models.Expense{
		Category: req.Category,
		Price:    *req.Price,
		PaidBy:   req.PaidBy,
		SplitBy:  req.SplitBy,
	}
	trip, err := s.tripRepo.UpdateTrip(ctx, id, func(t *db_models.Trip) error {
		t.Expenses = append(t.Expenses, expense)
		return nil
	})
	if err != nil {
		s.logger.Error("append expense", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *ExpenseService) GetExpenses(ctx context.Context, tripID string) ([]db_models.Expense, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.Expenses == nil {
		return []db_models.Expense{}, nil
	}
	return trip.Expenses, nil
}
