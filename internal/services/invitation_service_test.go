package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/internal/models/request_models"
	"wanderlog/pkg/utils"
)

func newTestInvitationService(store testStore, mail MailServiceInterface) InvitationServiceInterface {
	cfg := &config.Config{App: config.AppConfig{PublicBaseURL: "https://api.wanderlog.test"}}
	return NewInvitationService(cfg, mail, store.users, newTestTripService(store, noPlaces()), zap.NewNop())
}

func TestInvitationService_SendInvite(t *testing.T) {
	store := newTestStore(t)
	tripID := uuid.NewString()

	var sent TripInvitation
	svc := newTestInvitationService(store, &mockMail{sendTripInvitation: func(ctx context.Context, inv TripInvitation) error {
		sent = inv
		return nil
	}})

	err := svc.SendInvite(context.Background(), request_models.SendInviteRequest{
		Email:      "friend+trip@example.com",
		TripID:     tripID,
		TripName:   "Da Lat",
		SenderName: "Linh",
	})
	require.NoError(t, err)

	assert.Equal(t, "friend+trip@example.com", sent.To)
	assert.Equal(t, "Linh", sent.SenderName)

	link, err := url.Parse(sent.JoinURL)
	require.NoError(t, err)
	assert.Equal(t, "api.wanderlog.test", link.Host)
	assert.Equal(t, "/joinTrip", link.Path)
	assert.Equal(t, tripID, link.Query().Get("tripId"))
	assert.Equal(t, "friend+trip@example.com", link.Query().Get("email"))
}

func TestInvitationService_SendInviteFailure(t *testing.T) {
	store := newTestStore(t)
	calls := 0
	svc := newTestInvitationService(store, &mockMail{sendTripInvitation: func(ctx context.Context, inv TripInvitation) error {
		calls++
		return errors.New("535 bad credentials")
	}})

	err := svc.SendInvite(context.Background(), request_models.SendInviteRequest{
		Email: "x@example.com", TripID: uuid.NewString(), TripName: "t", SenderName: "s",
	})
	assert.ErrorIs(t, err, utils.ErrMailDelivery)
	assert.Equal(t, 1, calls)
}

func TestInvitationService_JoinTrip(t *testing.T) {
	store := newTestStore(t)
	svc := newTestInvitationService(store, nil)
	trips := newTestTripService(store, noPlaces())
	ctx := context.Background()

	host := store.seedUser(t, "g-host", "Linh", "linh@example.com")
	guest := store.seedUser(t, "g-guest", "Minh", "Minh@Example.com")
	trip := createTrip(t, trips, host, "2024-01-01", "2024-01-02")

	updated, err := svc.JoinTrip(ctx, trip.ID.String(), "MINH@example.com")
	require.NoError(t, err)
	require.Len(t, updated.Travelers, 2)
	assert.True(t, updated.HasTraveler(guest.ID))

	t.Run("already a traveler", func(t *testing.T) {
		_, err := svc.JoinTrip(ctx, trip.ID.String(), "minh@example.com")
		assert.ErrorIs(t, err, utils.ErrAlreadyTraveler)

		reloaded, err := store.trips.FindByIDWithTravelers(ctx, trip.ID)
		require.NoError(t, err)
		assert.Len(t, reloaded.Travelers, 2)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.JoinTrip(ctx, trip.ID.String(), "ghost@example.com")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("unknown trip", func(t *testing.T) {
		_, err := svc.JoinTrip(ctx, uuid.NewString(), "minh@example.com")
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})

	t.Run("malformed trip id", func(t *testing.T) {
		_, err := svc.JoinTrip(ctx, "abc", "minh@example.com")
		assert.ErrorIs(t, err, utils.ErrInvalidTripID)
	})
}
