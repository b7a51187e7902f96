package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/venuebook/venuebook/internal/server/docs"
	adminapi "github.com/venuebook/venuebook/internal/server/handlers/admin"
	authapi "github.com/venuebook/venuebook/internal/server/handlers/auth"
	bookingsapi "github.com/venuebook/venuebook/internal/server/handlers/bookings"
	"github.com/venuebook/venuebook/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(authapi.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(bookingsapi.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(adminapi.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// API group
					api := app.Group("/api")
					openapiHandler.Register(api.Group("/docs"))

					api.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(api)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
