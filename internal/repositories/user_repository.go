package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderlog/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByNameOrGoogleID(ctx context.Context, ref string) (*db_models.User, error)
	UpdateToken(ctx context.Context, id uuid.UUID, token string) error
	// Delete removes the user and its traveler memberships. It reports
	// false when no such user existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error) {
	return r.first(ctx, "google_id = ?", googleID)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return r.first(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) FindByNameOrGoogleID(ctx context.Context, ref string) (*db_models.User, error) {
	return r.first(ctx, "name = ? OR google_id = ?", ref, ref)
}

func (r *userRepository) first(ctx context.Context, query string, args ...any) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("token", token).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+tripTravelersTable+" WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
