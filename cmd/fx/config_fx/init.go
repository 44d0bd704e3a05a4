package config_fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/internal/infra"
	"wanderlog/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideHTTPClient,
	provideTokenSigner)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	logger := infra.NewLogger(cfg)
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger
}

// provideHTTPClient is shared by the Google Places and identity clients.
func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTP.ClientTimeout}
}

func provideTokenSigner(cfg *config.Config) (*utils.TokenSigner, error) {
	return utils.NewTokenSigner(cfg.JWT.Secret)
}
