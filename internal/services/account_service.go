package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type AccountServiceInterface interface {
	// LoginWithIdentityToken verifies a Google ID token, finds or creates the
	// matching user and returns a signed session token.
	LoginWithIdentityToken(ctx context.Context, idToken string) (string, error)
	GetUser(ctx context.Context, userID string) (*db_models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type AccountService struct {
	userRepo repositories.UserRepository
	verifier IdentityVerifier
	signer   *utils.TokenSigner
	logger   *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	verifier IdentityVerifier,
	signer *utils.TokenSigner,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		verifier: verifier,
		signer:   signer,
		logger:   logger.Named("account"),
	}
}

func (a *AccountService) LoginWithIdentityToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", utils.ErrInvalidIdentityToken
	}

	claims, err := a.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", utils.ErrInvalidIdentityToken
	}

	user, err := a.findOrCreate(ctx, claims)
	if err != nil {
		return "", err
	}

	token, err := a.signer.CreateToken(user.ID, user.Email)
	if err != nil {
		a.logger.Error("sign session token", zap.Error(err))
		return "", err
	}

	if err := a.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		a.logger.Warn("cache session token", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return token, nil
}

func (a *AccountService) findOrCreate(ctx context.Context, claims *IdentityClaims) (*db_models.User, error) {
	user, err := a.userRepo.FindByGoogleID(ctx, claims.Subject)
	if err != nil {
		a.logger.Error("find user by google id", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user != nil {
		return user, nil
	}

	user = &db_models.User{
		GoogleID:   claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Photo:      claims.Picture,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		// a concurrent first login for the same subject wins the unique index
		existing, findErr := a.userRepo.FindByGoogleID(ctx, claims.Subject)
		if findErr != nil || existing == nil {
			a.logger.Error("create user", zap.String("google_id", claims.Subject), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		return existing, nil
	}

	a.logger.Info("user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (a *AccountService) GetUser(ctx context.Context, userID string) (*db_models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidUserID
	}

	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		a.logger.Error("find user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidUserID
	}

	deleted, err := a.userRepo.Delete(ctx, id)
	if err != nil {
		a.logger.Error("delete user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrUserNotFound
	}
	return nil
}
