package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, logger *zap.Logger) services.MailServiceInterface {
	if cfg.SMTP.Username == "" {
		logger.Warn("SMTP_USERNAME is not set, invitation emails will be sent without authentication")
	}
	return services.NewSMTPMailService(cfg, logger)
}
