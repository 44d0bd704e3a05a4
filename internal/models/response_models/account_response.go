package response_models

import (
	"github.com/google/uuid"

	"wanderlog/internal/models/db_models"
)

type LoginResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	GoogleID   string    `json:"google_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	GivenName  string    `json:"given_name,omitempty"`
	FamilyName string    `json:"family_name,omitempty"`
	Photo      string    `json:"photo,omitempty"`
	CreatedAt  int64     `json:"created_at"`
}

func BuildUserResponse(u *db_models.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		GoogleID:   u.GoogleID,
		Name:       u.Name,
		Email:      u.Email,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		Photo:      u.Photo,
		CreatedAt:  u.CreatedAt,
	}
}
