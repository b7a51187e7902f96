package notify

import (
	"context"

	"github.com/samber/lo"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/bookings"
	"go.uber.org/zap"
)

// Dispatcher sends a templated status email to a booking's owner. Every path
// out of it is best-effort: the status change has already committed, so
// failures are logged and counted but never surfaced to the caller.
type Dispatcher struct {
	users  *auth.Service
	sender Sender

	logger *zap.Logger
}

func NewDispatcher(users *auth.Service, sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		users:  users,
		sender: sender,

		logger: logger,
	}
}

// BookingStatusChanged implements bookings.Notifier.
func (d *Dispatcher) BookingStatusChanged(ctx context.Context, booking *bookings.Booking) {
	logger := d.logger.With(
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(booking.Status)))

	owner, err := d.users.GetByID(ctx, booking.Owner)
	if err != nil {
		logger.Warn("skipping notification, owner not resolvable", zap.Error(err))
		notificationsTotal.WithLabelValues(string(booking.Status), "skipped").Inc()
		return
	}

	html, err := renderStatusEmail(owner.Name, booking)
	if err != nil {
		logger.Warn("failed to render notification", zap.Error(err))
		notificationsTotal.WithLabelValues(string(booking.Status), "error").Inc()
		return
	}

	msg := Message{
		To:      owner.Email,
		ToName:  owner.Name,
		Subject: lo.Ternary(booking.Status == bookings.StatusConfirmed, "Booking Confirmed", "Booking Rejected"),
		HTML:    html,
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Warn("failed to send notification", zap.Error(err))
		notificationsTotal.WithLabelValues(string(booking.Status), "error").Inc()
		return
	}

	notificationsTotal.WithLabelValues(string(booking.Status), "sent").Inc()
	logger.Info("notification sent")
}

var _ bookings.Notifier = (*Dispatcher)(nil)
