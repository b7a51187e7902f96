package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the swagger UI under the given router, if enabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		return
	}

	if h.config.PublicHost != "" {
		h.spec.Host = h.config.PublicHost
	}
	if h.config.PublicPath != "" {
		h.spec.BasePath = h.config.PublicPath
	}

	r.Get("/*", swagger.HandlerDefault)

	h.logger.Info("OpenAPI docs enabled",
		zap.String("host", h.spec.Host),
		zap.String("base_path", h.spec.BasePath))
}
