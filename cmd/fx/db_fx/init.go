package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderlog/internal/config"
	"wanderlog/internal/infra"
	"wanderlog/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewTripRepository,
	repositories.NewUserRepository)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db := infra.InitPostgresql(cfg, logger)
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, logger)
	}))
	return db
}
