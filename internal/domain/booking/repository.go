package booking

import (
	"context"
	"time"
)

// BookingRepository defines data access methods for bays and bookings.
type BookingRepository interface {
	ListActiveBays(ctx context.Context) ([]Bay, error)

	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	ListBookingsByDate(ctx context.Context, date time.Time) ([]Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// AvailabilityChecker answers whether one bay is free for a slot. The
// production implementation delegates to a database routine that knows the
// full booking calendar; a failing check is treated as "not available".
type AvailabilityChecker interface {
	CheckBay(ctx context.Context, bayAPIName string, date time.Time, startTime string, durationHours float64, excludeBookingID *string) (bool, error)
}
