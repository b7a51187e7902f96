package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is invoked after a successful status change. Implementations are
// best-effort: they never return an error and must not block the transition.
type Notifier interface {
	BookingStatusChanged(ctx context.Context, booking *Booking)
}

// Service drives the booking lifecycle: input validation, ownership
// enforcement, field updates and status transitions.
type Service struct {
	bookings *Repository

	notifier Notifier

	logger *zap.Logger
}

func NewService(bookings *Repository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		bookings: bookings,

		notifier: notifier,

		logger: logger,
	}
}

// Create persists a new pending booking owned by the actor.
func (s *Service) Create(ctx context.Context, actor Actor, draft BookingDraft) (*Booking, error) {
	draft.Owner = actor.ID
	draft.Status = StatusPending

	if err := validateFields(&draft); err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(ctx, &draft)
	if err != nil {
		s.logger.Error("failed to create booking", zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("id", booking.ID.String()),
		zap.String("owner", actor.ID.String()))

	return booking, nil
}

// ListOwn returns the actor's bookings, newest-created-first.
func (s *Service) ListOwn(ctx context.Context, actor Actor) ([]Booking, error) {
	return s.bookings.ListByOwner(ctx, actor.ID)
}

// ListAll returns every booking across all owners, newest-created-first.
// Admin only.
func (s *Service) ListAll(ctx context.Context, actor Actor) ([]Booking, error) {
	if err := CanListAll(actor); err != nil {
		return nil, err
	}

	return s.bookings.List(ctx)
}

// Update applies the provided fields to a booking the actor owns. The guard
// order inside the transaction is fixed: existence, then ownership, then
// payload validation.
func (s *Service) Update(ctx context.Context, actor Actor, id uuid.UUID, patch BookingPatch) (*Booking, error) {
	booking, err := s.bookings.Update(ctx, id, func(booking *Booking) error {
		if polErr := CanModify(actor, booking); polErr != nil {
			return polErr
		}

		if patch.Empty() {
			return fmt.Errorf("%w: at least one field must be provided", ErrValidation)
		}

		if patch.FunctionName != nil {
			booking.FunctionName = *patch.FunctionName
		}
		if patch.StartDate != nil {
			booking.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			booking.EndDate = *patch.EndDate
		}
		if patch.Venue != nil {
			booking.Venue = *patch.Venue
		}

		// Dates are validated against the merged record, so supplying only
		// one of the pair still has to respect the existing other half.
		return validateFields(&booking.BookingDraft)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking updated", zap.String("id", id.String()))

	return booking, nil
}

// Delete removes a booking the actor owns. No soft-delete.
func (s *Service) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	err := s.bookings.Delete(ctx, id, func(booking *Booking) error {
		return CanModify(actor, booking)
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking deleted", zap.String("id", id.String()))

	return nil
}

// ChangeStatus confirms or rejects a booking and dispatches one notification
// to its owner. Admin only. Re-deciding an already decided booking is
// allowed; the prior status is not consulted.
func (s *Service) ChangeStatus(ctx context.Context, actor Actor, id uuid.UUID, status Status) (*Booking, error) {
	if err := CanChangeStatus(actor); err != nil {
		return nil, err
	}

	if !status.Settable() {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrValidation, StatusConfirmed, StatusRejected)
	}

	booking, err := s.bookings.Update(ctx, id, func(booking *Booking) error {
		booking.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.String("id", id.String()),
		zap.String("status", string(status)))

	s.notifier.BookingStatusChanged(ctx, booking)

	return booking, nil
}

func validateFields(draft *BookingDraft) error {
	draft.FunctionName = strings.TrimSpace(draft.FunctionName)
	draft.Venue = strings.TrimSpace(draft.Venue)

	switch {
	case draft.FunctionName == "":
		return fmt.Errorf("%w: functionName is required", ErrValidation)
	case draft.Venue == "":
		return fmt.Errorf("%w: venue is required", ErrValidation)
	case draft.StartDate.IsZero() || draft.EndDate.IsZero():
		return fmt.Errorf("%w: startDate and endDate are required", ErrValidation)
	case !draft.EndDate.After(draft.StartDate):
		return fmt.Errorf("%w: endDate must be after startDate", ErrValidation)
	}

	return nil
}
