package admin

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuebook/venuebook/internal/bookings"
)

// ChangeStatusRequest represents the request payload for an admin decision.
// Pending is never a settable target.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected"`
}

// BookingResponse represents the response payload for a booking.
type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	Owner        uuid.UUID `json:"owner"`
	FunctionName string    `json:"functionName"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Venue        string    `json:"venue"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newBookingResponse(booking *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID,
		Owner:        booking.Owner,
		FunctionName: booking.FunctionName,
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		Venue:        booking.Venue,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}
