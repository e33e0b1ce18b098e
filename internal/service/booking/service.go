package booking

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lengolf/lengolf-backend-go/internal/domain/booking"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// checkTimeout bounds each per-bay availability call so one slow check
// cannot stall the whole fan-out.
const checkTimeout = 5 * time.Second

type BookingServiceImpl struct {
	db          *database.DB
	bookingRepo booking.BookingRepository
	checker     booking.AvailabilityChecker
	logger      *slog.Logger
}

func NewBookingService(
	db *database.DB,
	bookingRepo booking.BookingRepository,
	checker booking.AvailabilityChecker,
	logger *slog.Logger,
) booking.BookingService {
	return &BookingServiceImpl{
		db:          db,
		bookingRepo: bookingRepo,
		checker:     checker,
		logger:      logger,
	}
}

func (s *BookingServiceImpl) CheckSlotForAllBays(ctx context.Context, req booking.CheckSlotRequest) ([]booking.BayAvailability, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := validator.IsValidDate(req.Date)
	bays, err := s.bookingRepo.ListActiveBays(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]booking.BayAvailability, len(bays))
	g, gctx := errgroup.WithContext(ctx)
	for i, bay := range bays {
		i, bay := i, bay
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, checkTimeout)
			defer cancel()

			available, err := s.checker.CheckBay(callCtx, bay.APIName, date, req.StartTime, req.Duration, req.BookingIDToExclude)
			if err != nil {
				// Fail safe: an unanswered check never offers the bay.
				s.logger.Warn("bay availability check failed",
					slog.String("bay", bay.APIName),
					slog.String("error", err.Error()),
				)
				available = false
			}
			results[i] = booking.BayAvailability{
				Name:        bay.Name,
				APIName:     bay.APIName,
				IsAvailable: available,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	bays, err := s.bookingRepo.ListActiveBays(ctx)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	known := false
	for _, bay := range bays {
		if bay.APIName == req.BayAPIName {
			known = true
			break
		}
	}
	if !known {
		return booking.BookingResponse{}, booking.ErrBayNotFound
	}

	available, err := s.checker.CheckBay(ctx, req.BayAPIName, date, req.StartTime, req.DurationHours, nil)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	if !available {
		return booking.BookingResponse{}, booking.ErrSlotNotAvailable
	}

	created, err := s.bookingRepo.CreateBooking(ctx, booking.Booking{
		ID:            uuid.New().String(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		BayAPIName:    req.BayAPIName,
		NumberOfPax:   req.NumberOfPax,
		Status:        "confirmed",
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return mapToBookingResponse(created), nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id string) (booking.BookingResponse, error) {
	b, err := s.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return mapToBookingResponse(b), nil
}

func (s *BookingServiceImpl) ListBookingsByDate(ctx context.Context, date string) ([]booking.BookingResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	bookings, err := s.bookingRepo.ListBookingsByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]booking.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, mapToBookingResponse(b))
	}
	sort.Slice(responses, func(i, j int) bool {
		if responses[i].StartTime != responses[j].StartTime {
			return responses[i].StartTime < responses[j].StartTime
		}
		return responses[i].BayAPIName < responses[j].BayAPIName
	})
	return responses, nil
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, id string) error {
	b, err := s.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == "cancelled" {
		return booking.ErrAlreadyCancelled
	}
	return s.bookingRepo.CancelBooking(ctx, id)
}

func mapToBookingResponse(b booking.Booking) booking.BookingResponse {
	return booking.BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date.Format("2006-01-02"),
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		BayAPIName:    b.BayAPIName,
		NumberOfPax:   b.NumberOfPax,
		Status:        b.Status,
	}
}
