package bookings

import "errors"

var (
	ErrNotFound   = errors.New("booking not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid booking")
)
