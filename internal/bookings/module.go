package bookings

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"bookings",
		logger.WithNamedLogger("bookings"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
