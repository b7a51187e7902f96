package bookings

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"   // awaiting an admin decision
	StatusConfirmed Status = "confirmed" // approved by an admin
	StatusRejected  Status = "rejected"  // declined by an admin
)

// Settable reports whether the status is a valid target for an admin
// decision. Pending is the initial state only, never a target.
func (s Status) Settable() bool {
	return s == StatusConfirmed || s == StatusRejected
}

type BookingDraft struct {
	Owner        uuid.UUID
	FunctionName string
	StartDate    time.Time
	EndDate      time.Time
	Venue        string
	Status       Status
}

type Booking struct {
	BookingDraft

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingPatch carries the fields an owner may change. Nil means "leave as is".
type BookingPatch struct {
	FunctionName *string
	StartDate    *time.Time
	EndDate      *time.Time
	Venue        *string
}

func (p BookingPatch) Empty() bool {
	return p.FunctionName == nil && p.StartDate == nil && p.EndDate == nil && p.Venue == nil
}
