package notify

import (
	"github.com/go-core-fx/logger"
	"github.com/venuebook/venuebook/internal/bookings"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"notify",
		logger.WithNamedLogger("notify"),
		fx.Provide(NewSMTPSender, fx.Private),
		fx.Provide(NewDispatcher),
		fx.Provide(func(dispatcher *Dispatcher) bookings.Notifier { return dispatcher }),
	)
}
