package review

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingOwner = errors.New("not authorized to review this booking")
	ErrBookingNotDone  = errors.New("can only review completed bookings")
	ErrDuplicateReview = errors.New("review already submitted for this booking")
)
