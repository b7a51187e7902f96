package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/bookings"
	"github.com/venuebook/venuebook/internal/config"
	"github.com/venuebook/venuebook/internal/notify"
	"github.com/venuebook/venuebook/internal/server"
	"github.com/venuebook/venuebook/pkg/badgerfx"
	"github.com/venuebook/venuebook/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.0.1", ReleaseID: 1} }),
		auth.Module(),
		bookings.Module(),
		notify.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 VenueBook application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 VenueBook application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
