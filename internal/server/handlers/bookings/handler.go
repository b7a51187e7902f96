package bookings

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
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
	r = r.Group("/bookings")

	r.Use(middleware.Auth(h.authSvc))
	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

//	@Summary		Create a booking
//	@Description	Create a new pending booking owned by the caller
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			booking	body		CreateRequest	true	"Booking creation request"
//	@Success		201		{object}	BookingResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Router			/bookings [post]
//
// Create a new booking.
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	draft := bookings.BookingDraft{
		FunctionName: req.FunctionName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Venue:        req.Venue,
	}

	booking, err := h.bookingsSvc.Create(c.Context(), actor, draft)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newBookingResponse(booking))
}

//	@Summary		List own bookings
//	@Description	List the caller's bookings, newest first
//	@Tags			bookings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		BookingResponse
//	@Failure		401	{object}	fiberfx.ErrorResponse
//	@Router			/bookings [get]
//
// List the caller's bookings.
func (h *Handler) list(c *fiber.Ctx) error {
	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	items, err := h.bookingsSvc.ListOwn(c.Context(), actor)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	return c.JSON(lo.Map(items, func(booking bookings.Booking, _ int) BookingResponse {
		return newBookingResponse(&booking)
	}))
}

//	@Summary		Update a booking
//	@Description	Apply partial field updates to a booking the caller owns
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string			true	"Booking ID"
//	@Param			booking	body		UpdateRequest	true	"Booking update request"
//	@Success		200		{object}	BookingResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		403		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/bookings/{id} [put]
//
// Update a booking. The body is decoded up front, but field validation runs
// only after existence and ownership have been established, so a foreign or
// missing booking never answers with a validation error.
func (h *Handler) put(c *fiber.Ctx) error {
	id, err := getBookingID(c)
	if err != nil {
		return err
	}

	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	req := new(UpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	patch := bookings.BookingPatch{
		FunctionName: req.FunctionName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Venue:        req.Venue,
	}

	booking, err := h.bookingsSvc.Update(c.Context(), actor, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return c.JSON(newBookingResponse(booking))
}

//	@Summary		Delete a booking
//	@Description	Permanently delete a booking the caller owns
//	@Tags			bookings
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		403	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/bookings/{id} [delete]
//
// Delete a booking.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getBookingID(c)
	if err != nil {
		return err
	}

	actor, err := middleware.Actor(c)
	if err != nil {
		return err
	}

	if err := h.bookingsSvc.Delete(c.Context(), actor, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return c.JSON(MessageResponse{Message: "Booking deleted successfully"})
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
