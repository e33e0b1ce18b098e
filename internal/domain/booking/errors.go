package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBayNotFound      = errors.New("bay not found")
	ErrSlotNotAvailable = errors.New("the requested slot is not available on this bay")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)
