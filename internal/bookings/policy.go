package bookings

import (
	"github.com/google/uuid"
	"github.com/venuebook/venuebook/internal/auth"
)

// Actor is the identity a verified token asserts: subject ID plus the role
// snapshot taken at issuance time.
type Actor struct {
	ID   uuid.UUID
	Role auth.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == auth.UserRoleAdmin
}

// CanModify reports whether the actor may update or delete the booking.
// Existence must be established before calling, so a missing record surfaces
// as ErrNotFound and never leaks through a different error.
func CanModify(actor Actor, booking *Booking) error {
	if booking.Owner != actor.ID {
		return ErrForbidden
	}

	return nil
}

// CanListAll reports whether the actor may read bookings across all owners.
func CanListAll(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	return nil
}

// CanChangeStatus reports whether the actor may confirm or reject bookings.
func CanChangeStatus(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	return nil
}
