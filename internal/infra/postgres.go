package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wanderlog/internal/config"
	"wanderlog/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: NewGormLogger(logger, GormLogLevel(cfg.Log.Level)),
	})
	if err != nil {
		logger.Fatal("Error connecting to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Error getting database instance", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			logger.Fatal("Error migrating database", zap.Error(err))
		}
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.User{}, &db_models.Trip{})
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed")
	}
}
