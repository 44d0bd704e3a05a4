package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/repositories"
)

// mockPlaces is a test double for PlacesServiceInterface.
type mockPlaces struct {
	getPlace func(ctx context.Context, placeID string) (*db_models.Place, error)
}

func (m *mockPlaces) GetPlace(ctx context.Context, placeID string) (*db_models.Place, error) {
	return m.getPlace(ctx, placeID)
}

var _ PlacesServiceInterface = (*mockPlaces)(nil)

type mockVerifier struct {
	verify func(ctx context.Context, idToken string) (*IdentityClaims, error)
}

func (m *mockVerifier) Verify(ctx context.Context, idToken string) (*IdentityClaims, error) {
	return m.verify(ctx, idToken)
}

var _ IdentityVerifier = (*mockVerifier)(nil)

type mockMail struct {
	sendTripInvitation func(ctx context.Context, inv TripInvitation) error
}

func (m *mockMail) SendTripInvitation(ctx context.Context, inv TripInvitation) error {
	return m.sendTripInvitation(ctx, inv)
}

var _ MailServiceInterface = (*mockMail)(nil)

type testStore struct {
	trips repositories.TripRepository
	users repositories.UserRepository
}

func newTestStore(t *testing.T) testStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&db_models.User{}, &db_models.Trip{}))
	return testStore{
		trips: repositories.NewTripRepository(db),
		users: repositories.NewUserRepository(db),
	}
}

func (s testStore) seedUser(t *testing.T, googleID, name, email string) *db_models.User {
	t.Helper()
	u := &db_models.User{GoogleID: googleID, Name: name, Email: email}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func noPlaces() *mockPlaces {
	return &mockPlaces{getPlace: func(ctx context.Context, placeID string) (*db_models.Place, error) {
		panic("unexpected place lookup")
	}}
}

func newTestTripService(store testStore, places PlacesServiceInterface) TripServiceInterface {
	return NewTripService(store.trips, store.users, places, zap.NewNop())
}
