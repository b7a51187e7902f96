package auth

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/server/validation"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(authSvc *auth.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/auth")

	r.Use(h.errorsHandler)
	r.Post("/register", validation.DecorateWithBodyEx(h.validator, h.register))
	r.Post("/login", validation.DecorateWithBodyEx(h.validator, h.login))
}

//	@Summary		Register a new user
//	@Description	Create a user account and return a session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		RegisterRequest	true	"Registration request"
//	@Success		201			{object}	TokenResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		409			{object}	fiberfx.ErrorResponse
//	@Router			/auth/register [post]
//
// Register a new user.
func (h *Handler) register(c *fiber.Ctx, req *RegisterRequest) error {
	draft := auth.UserDraft{
		UserBase: auth.UserBase{
			Name:  req.Name,
			Email: req.Email,
		},
		Password: req.Password,
	}

	_, token, err := h.authSvc.Register(c.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{Token: token})
}

//	@Summary		Log in
//	@Description	Exchange email and password for a session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Login request"
//	@Success		200			{object}	TokenResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		401			{object}	fiberfx.ErrorResponse
//	@Router			/auth/login [post]
//
// Log a user in.
func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	_, token, err := h.authSvc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	return c.JSON(TokenResponse{Token: token})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, auth.ErrEmailTaken.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
