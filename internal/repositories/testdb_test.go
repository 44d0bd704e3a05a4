package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wanderlog/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&db_models.User{}, &db_models.Trip{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, repo UserRepository, googleID, name, email string) *db_models.User {
	t.Helper()
	u := &db_models.User{GoogleID: googleID, Name: name, Email: email}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}
