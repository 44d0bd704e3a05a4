package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nowUnix stamps rows; tests pin it.
var nowUnix = func() int64 { return time.Now().Unix() }

// Entity carries the identity and unix-second timestamps shared by users
// and trips. Rows are hard-deleted, so there is no soft-delete column.
type Entity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64     `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate keeps a caller-chosen id and mints one otherwise.
func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = nowUnix()
	e.UpdatedAt = e.CreatedAt
	return nil
}

func (e *Entity) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = nowUnix()
	return nil
}
