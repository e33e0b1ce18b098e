package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bays     []booking.Bay
	bookings map[string]booking.Booking
	created  []booking.Booking
}

func newFakeBookingRepo(bays ...booking.Bay) *fakeBookingRepo {
	return &fakeBookingRepo{bays: bays, bookings: map[string]booking.Booking{}}
}

func (f *fakeBookingRepo) ListActiveBays(ctx context.Context) ([]booking.Bay, error) {
	return f.bays, nil
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	f.created = append(f.created, b)
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (booking.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListBookingsByDate(ctx context.Context, date time.Time) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range f.bookings {
		if b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CancelBooking(ctx context.Context, id string) error {
	b, ok := f.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = "cancelled"
	f.bookings[id] = b
	return nil
}

// fakeChecker answers per bay: a missing entry is available, an entry with
// err set simulates a failing check.
type fakeChecker struct {
	unavailable map[string]bool
	errs        map[string]error
}

func (f *fakeChecker) CheckBay(ctx context.Context, bayAPIName string, date time.Time, startTime string, durationHours float64, excludeBookingID *string) (bool, error) {
	if err := f.errs[bayAPIName]; err != nil {
		return false, err
	}
	return !f.unavailable[bayAPIName], nil
}

func testBays() []booking.Bay {
	return []booking.Bay{
		{ID: "b1", Name: "Bay 1", APIName: "Bay 1 (Bar)", IsActive: true},
		{ID: "b2", Name: "Bay 2", APIName: "Bay 2", IsActive: true},
		{ID: "b3", Name: "Bay 3", APIName: "Bay 3 (Entrance)", IsActive: true},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckSlotForAllBays_AllAvailable(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	svc := NewBookingService(nil, repo, &fakeChecker{}, quietLogger())

	results, err := svc.CheckSlotForAllBays(context.Background(), booking.CheckSlotRequest{
		Date:      "2025-06-02",
		StartTime: "14:00",
		Duration:  1.5,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.True(t, r.IsAvailable, "bay %s", r.APIName)
	}
	assert.Equal(t, "Bay 1 (Bar)", results[0].APIName)
}

func TestCheckSlotForAllBays_FailedCheckIsUnavailable(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	checker := &fakeChecker{
		errs: map[string]error{"Bay 2": errors.New("timeout")},
	}
	svc := NewBookingService(nil, repo, checker, quietLogger())

	// A bay whose check errors is reported unavailable; the other bays and
	// the response as a whole are unaffected.
	results, err := svc.CheckSlotForAllBays(context.Background(), booking.CheckSlotRequest{
		Date:      "2025-06-02",
		StartTime: "14:00",
		Duration:  1,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].IsAvailable)
	assert.False(t, results[1].IsAvailable)
	assert.True(t, results[2].IsAvailable)
}

func TestCheckSlotForAllBays_InvalidRequest(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	svc := NewBookingService(nil, repo, &fakeChecker{}, quietLogger())

	_, err := svc.CheckSlotForAllBays(context.Background(), booking.CheckSlotRequest{
		Date:      "06/02/2025",
		StartTime: "2pm",
		Duration:  0,
	})
	assert.Error(t, err)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	checker := &fakeChecker{unavailable: map[string]bool{"Bay 2": true}}
	svc := NewBookingService(nil, repo, checker, quietLogger())

	_, err := svc.CreateBooking(context.Background(), booking.CreateBookingRequest{
		CustomerName:  "Somchai",
		Date:          "2025-06-02",
		StartTime:     "14:00",
		DurationHours: 1,
		BayAPIName:    "Bay 2",
		NumberOfPax:   2,
	})
	assert.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_UnknownBay(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	svc := NewBookingService(nil, repo, &fakeChecker{}, quietLogger())

	_, err := svc.CreateBooking(context.Background(), booking.CreateBookingRequest{
		CustomerName:  "Somchai",
		Date:          "2025-06-02",
		StartTime:     "14:00",
		DurationHours: 1,
		BayAPIName:    "Bay 99",
		NumberOfPax:   2,
	})
	assert.ErrorIs(t, err, booking.ErrBayNotFound)
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	svc := NewBookingService(nil, repo, &fakeChecker{}, quietLogger())

	resp, err := svc.CreateBooking(context.Background(), booking.CreateBookingRequest{
		CustomerName:  "Somchai",
		Date:          "2025-06-02",
		StartTime:     "14:00",
		DurationHours: 1.5,
		BayAPIName:    "Bay 2",
		NumberOfPax:   3,
		CreatedBy:     "staff-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-06-02", resp.Date)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "staff-1", repo.created[0].CreatedBy)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo := newFakeBookingRepo(testBays()...)
	repo.bookings["bk1"] = booking.Booking{ID: "bk1", Status: "cancelled"}
	svc := NewBookingService(nil, repo, &fakeChecker{}, quietLogger())

	err := svc.CancelBooking(context.Background(), "bk1")
	assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
}
