package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"wanderlog/cmd/fx/account_fx"
	"wanderlog/cmd/fx/config_fx"
	"wanderlog/cmd/fx/controllers_fx"
	"wanderlog/cmd/fx/db_fx"
	"wanderlog/cmd/fx/expense_fx"
	"wanderlog/cmd/fx/invitation_fx"
	"wanderlog/cmd/fx/mail_fx"
	"wanderlog/cmd/fx/places_fx"
	"wanderlog/cmd/fx/trip_fx"
	"wanderlog/internal/api"
	"wanderlog/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		places_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		expense_fx.Module,
		invitation_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
