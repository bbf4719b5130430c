package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrServiceNotFound    = errors.New("service not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotCounterpart     = errors.New("not authorized to update this booking")
	ErrForbidden          = errors.New("not authorized")
	ErrInvalidTarget      = errors.New("invalid status update for provider")
	ErrCustomerNotPending = errors.New("customer can only cancel pending bookings")
)
