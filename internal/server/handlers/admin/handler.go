package admin

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/bookings"
	"github.com/venuebook/venuebook/internal/server/middleware"
	"github.com/venuebook/venuebook/internal/server/validation"
	"go.uber.org/zap"
)

type Handler struct {
	bookingsSvc *bookings.Service
	authSvc     *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	bookingsSvc *bookings.Service,
	authSvc *auth.Service,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		bookingsSvc: bookingsSvc,
		authSvc:     authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/admin/bookings")

	r.Use(middleware.Auth(h.authSvc))
	r.Use(middleware.RequireRole(auth.UserRoleAdmin))
	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
}

//	@Summary		List all bookings
//	@Description	List bookings across all owners, newest first
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		BookingResponse
//	@Failure		401	{object}	fiberfx.ErrorResponse
//	@Failure		403	{object}	fiberfx.ErrorResponse
//	@Router			/admin/bookings [get]
//
// List all bookings.
func (h *Handler) list(c *fiber.Ctx) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	items, err := h.bookingsSvc.ListAll(c.Context(), actor)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	return c.JSON(lo.Map(items, func(booking bookings.Booking, _ int) BookingResponse {
		return newBookingResponse(&booking)
	}))
}

//	@Summary		Confirm or reject a booking
//	@Description	Set a booking's status and notify its owner
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Booking ID"
//	@Param			status	body		ChangeStatusRequest	true	"Status change request"
//	@Success		200		{object}	BookingResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Failure		403		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/admin/bookings/{id} [patch]
//
// Change a booking's status.
func (h *Handler) patch(c *fiber.Ctx, req *ChangeStatusRequest) error {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	booking, err := h.bookingsSvc.ChangeStatus(c.Context(), actor, id, bookings.Status(req.Status))
	if err != nil {
		return fmt.Errorf("failed to change booking status: %w", err)
	}

	return c.JSON(newBookingResponse(booking))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, bookings.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, bookings.ErrNotFound.Error())
	case errors.Is(err, bookings.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, bookings.ErrForbidden.Error())
	case errors.Is(err, bookings.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
