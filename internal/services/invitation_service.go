package services

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type InvitationServiceInterface interface {
	// SendInvite emails a join link for the trip. Delivery is attempted once.
	SendInvite(ctx context.Context, req request_models.SendInviteRequest) error
	JoinTrip(ctx context.Context, tripID, email string) (*db_models.Trip, error)
}

type InvitationService struct {
	publicBaseURL string
	mail          MailServiceInterface
	userRepo      repositories.UserRepository
	trips         TripServiceInterface
	logger        *zap.Logger
}

func NewInvitationService(
	cfg *config.Config,
	mail MailServiceInterface,
	userRepo repositories.UserRepository,
	trips TripServiceInterface,
	logger *zap.Logger,
) InvitationServiceInterface {
	return &InvitationService{
		publicBaseURL: cfg.App.PublicBaseURL,
		mail:          mail,
		userRepo:      userRepo,
		trips:         trips,
		logger:        logger.Named("invitation"),
	}
}

func (s *InvitationService) SendInvite(ctx context.Context, req request_models.SendInviteRequest) error {
	if _, err := parseTripID(req.TripID); err != nil {
		return err
	}

	err := s.mail.SendTripInvitation(ctx, TripInvitation{
		To:         req.Email,
		TripName:   req.TripName,
		SenderName: req.SenderName,
		JoinURL:    s.JoinURL(req.TripID, req.Email),
	})
	if err != nil {
		s.logger.Error("send invitation", zap.String("trip_id", req.TripID), zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrMailDelivery, err)
	}
	return nil
}

// JoinURL is the link an invitee follows to accept.
func (s *InvitationService) JoinURL(tripID, email string) string {
	q := url.Values{}
	q.Set("tripId", tripID)
	q.Set("email", email)
	return s.publicBaseURL + "/joinTrip?" + q.Encode()
}

func (s *InvitationService) JoinTrip(ctx context.Context, tripID, email string) (*db_models.Trip, error) {
	if _, err := parseTripID(tripID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("find user by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return s.trips.AddTraveler(ctx, tripID, user.ID.String())
}
