package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wanderlog/internal/models/db_models"
)

const tripTravelersTable = "trip_travelers"

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip, hostID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	FindByIDWithTravelers(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	// UpdateTrip loads the trip, hands it to fn and writes back its nested
	// collections in the same transaction. The returned trip has its
	// travelers loaded. A missing trip yields (nil, nil) and fn is not
	// called; an error from fn is returned unchanged.
	UpdateTrip(ctx context.Context, id uuid.UUID, fn func(*db_models.Trip) error) (*db_models.Trip, error)
	SetBudget(ctx context.Context, id uuid.UUID, budget decimal.Decimal) (bool, error)
	SetNotes(ctx context.Context, id uuid.UUID, notes string) (bool, error)
	// AddTraveler inserts the membership row. It reports false when the user
	// was already a traveler.
	AddTraveler(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip, hostID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trip.HostID = hostID
		if err := tx.Omit("Travelers").Create(trip).Error; err != nil {
			return err
		}
		return tx.Table(tripTravelersTable).Create(map[string]any{
			"trip_id": trip.ID,
			"user_id": hostID,
		}).Error
	})
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) FindByIDWithTravelers(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Travelers", travelerColumns).
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	trips := make([]db_models.Trip, 0)
	memberOf := r.db.Table(tripTravelersTable).Select("trip_id").Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Preload("Travelers", travelerColumns).
		Where("host_id = ? OR id IN (?)", userID, memberOf).
		Order("start_date ASC, created_at ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) UpdateTrip(ctx context.Context, id uuid.UUID, fn func(*db_models.Trip) error) (*db_models.Trip, error) {
	var trip db_models.Trip
	found := true

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&trip, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}

		if err := fn(&trip); err != nil {
			return err
		}

		if err := tx.Model(&trip).
			Select("Itinerary", "PlacesToVisit", "Expenses", "UpdatedAt").
			Updates(&trip).Error; err != nil {
			return err
		}

		return loadTravelers(tx, &trip)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &trip, nil
}

func (r *tripRepository) SetBudget(ctx context.Context, id uuid.UUID, budget decimal.Decimal) (bool, error) {
	return r.updateColumn(ctx, id, "budget", budget)
}

func (r *tripRepository) SetNotes(ctx context.Context, id uuid.UUID, notes string) (bool, error) {
	return r.updateColumn(ctx, id, "notes", notes)
}

func (r *tripRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tripRepository) AddTraveler(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		present, err := isTraveler(tx, tripID, userID)
		if err != nil || present {
			return err
		}

		if err := tx.Table(tripTravelersTable).Create(map[string]any{
			"trip_id": tripID,
			"user_id": userID,
		}).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

func isTraveler(tx *gorm.DB, tripID, userID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Table(tripTravelersTable).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	return count > 0, err
}

func loadTravelers(tx *gorm.DB, trip *db_models.Trip) error {
	trip.Travelers = make([]db_models.User, 0)
	return tx.Model(&db_models.User{}).
		Select("users.id", "users.name", "users.email", "users.photo").
		Joins("JOIN "+tripTravelersTable+" ON "+tripTravelersTable+".user_id = users.id").
		Where(tripTravelersTable+".trip_id = ?", trip.ID).
		Find(&trip.Travelers).Error
}

func travelerColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "photo")
}
