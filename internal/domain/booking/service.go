package booking

import "context"

// BookingService defines business logic for slot checks and bookings.
type BookingService interface {
	// CheckSlotForAllBays fans the slot check out to every active bay.
	// A failing remote check marks that bay unavailable instead of failing
	// the whole response.
	CheckSlotForAllBays(ctx context.Context, req CheckSlotRequest) ([]BayAvailability, error)

	CreateBooking(ctx context.Context, req CreateBookingRequest) (BookingResponse, error)
	GetBooking(ctx context.Context, id string) (BookingResponse, error)
	ListBookingsByDate(ctx context.Context, date string) ([]BookingResponse, error)
	CancelBooking(ctx context.Context, id string) error
}
