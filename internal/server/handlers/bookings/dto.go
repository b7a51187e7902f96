package bookings

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuebook/venuebook/internal/bookings"
)

// CreateRequest represents the request payload for creating a booking.
type CreateRequest struct {
	FunctionName string    `json:"functionName" validate:"required"`
	StartDate    time.Time `json:"startDate"    validate:"required"`
	EndDate      time.Time `json:"endDate"      validate:"required"`
	Venue        string    `json:"venue"        validate:"required"`
}

// UpdateRequest represents the request payload for updating a booking.
// All fields are optional; field-level checks run against the merged record.
type UpdateRequest struct {
	FunctionName *string    `json:"functionName,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Venue        *string    `json:"venue,omitempty"`
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

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
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
