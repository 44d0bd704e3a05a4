package db_models

type User struct {
	Entity
	GoogleID   string `gorm:"uniqueIndex;not null" json:"google_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"index;not null" json:"email"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Token      string `json:"-"`
}
