package api_test

import (
	"context"

	"github.com/shopspring/decimal"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/services"
)

// mockTripService is a test double for services.TripServiceInterface.
// Set only the method fields your test needs.
type mockTripService struct {
	createTrip       func(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	listTripsForUser func(ctx context.Context, userID string) ([]db_models.Trip, error)
	getItinerary     func(ctx context.Context, tripID string) ([]db_models.ItineraryDay, error)
	getPlacesToVisit func(ctx context.Context, tripID string) ([]db_models.Place, error)
	getNote          func(ctx context.Context, tripID string) (string, error)
	setNote          func(ctx context.Context, tripID, note string) (string, error)
	setBudget        func(ctx context.Context, tripID string, budget *decimal.Decimal) (decimal.Decimal, error)
	addTraveler      func(ctx context.Context, tripID, userID string) (*db_models.Trip, error)
	addPlace         func(ctx context.Context, tripID, placeID string) (*db_models.Trip, error)
	addActivityToDay func(ctx context.Context, tripID, date string, req request_models.AddActivityRequest) (*db_models.Trip, error)
	removeActivity   func(ctx context.Context, tripID, date string, index int) (*db_models.Trip, error)
}

func (m *mockTripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	return m.createTrip(ctx, req)
}
func (m *mockTripService) ListTripsForUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	return m.listTripsForUser(ctx, userID)
}
func (m *mockTripService) GetItinerary(ctx context.Context, tripID string) ([]db_models.ItineraryDay, error) {
	return m.getItinerary(ctx, tripID)
}
func (m *mockTripService) GetPlacesToVisit(ctx context.Context, tripID string) ([]db_models.Place, error) {
	return m.getPlacesToVisit(ctx, tripID)
}
func (m *mockTripService) GetNote(ctx context.Context, tripID string) (string, error) {
	return m.getNote(ctx, tripID)
}
func (m *mockTripService) SetNote(ctx context.Context, tripID, note string) (string, error) {
	return m.setNote(ctx, tripID, note)
}
func (m *mockTripService) SetBudget(ctx context.Context, tripID string, budget *decimal.Decimal) (decimal.Decimal, error) {
	return m.setBudget(ctx, tripID, budget)
}
func (m *mockTripService) AddTraveler(ctx context.Context, tripID, userID string) (*db_models.Trip, error) {
	return m.addTraveler(ctx, tripID, userID)
}
func (m *mockTripService) AddPlace(ctx context.Context, tripID, placeID string) (*db_models.Trip, error) {
	return m.addPlace(ctx, tripID, placeID)
}
func (m *mockTripService) AddActivityToDay(ctx context.Context, tripID, date string, req request_models.AddActivityRequest) (*db_models.Trip, error) {
	return m.addActivityToDay(ctx, tripID, date, req)
}
func (m *mockTripService) RemoveActivity(ctx context.Context, tripID, date string, index int) (*db_models.Trip, error) {
	return m.removeActivity(ctx, tripID, date, index)
}

var _ services.TripServiceInterface = (*mockTripService)(nil)

type mockExpenseService struct {
	addExpense  func(ctx context.Context, tripID string, req request_models.AddExpenseRequest) (*db_models.Trip, error)
	getExpenses func(ctx context.Context, tripID string) ([]db_models.Expense, error)
}

func (m *mockExpenseService) AddExpense(ctx context.Context, tripID string, req request_models.AddExpenseRequest) (*db_models.Trip, error) {
	return m.addExpense(ctx, tripID, req)
}
func (m *mockExpenseService) GetExpenses(ctx context.Context, tripID string) ([]db_models.Expense, error) {
	return m.getExpenses(ctx, tripID)
}

var _ services.ExpenseServiceInterface = (*mockExpenseService)(nil)

type mockAccountService struct {
	login      func(ctx context.Context, idToken string) (string, error)
	getUser    func(ctx context.Context, userID string) (*db_models.User, error)
	deleteUser func(ctx context.Context, userID string) error
}

func (m *mockAccountService) LoginWithIdentityToken(ctx context.Context, idToken string) (string, error) {
	return m.login(ctx, idToken)
}
func (m *mockAccountService) GetUser(ctx context.Context, userID string) (*db_models.User, error) {
	return m.getUser(ctx, userID)
}
func (m *mockAccountService) DeleteUser(ctx context.Context, userID string) error {
	return m.deleteUser(ctx, userID)
}

var _ services.AccountServiceInterface = (*mockAccountService)(nil)

type mockInvitationService struct {
	sendInvite func(ctx context.Context, req request_models.SendInviteRequest) error
	joinTrip   func(ctx context.Context, tripID, email string) (*db_models.Trip, error)
}

func (m *mockInvitationService) SendInvite(ctx context.Context, req request_models.SendInviteRequest) error {
	return m.sendInvite(ctx, req)
}
func (m *mockInvitationService) JoinTrip(ctx context.Context, tripID, email string) (*db_models.Trip, error) {
	return m.joinTrip(ctx, tripID, email)
}

var _ services.InvitationServiceInterface = (*mockInvitationService)(nil)
