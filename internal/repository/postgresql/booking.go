package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/booking"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
)

type bookingRepositoryImpl struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepositoryImpl{db: db}
}

// ListActiveBays implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ListActiveBays(ctx context.Context) ([]booking.Bay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, api_name, is_active, display_rank
		FROM bays
		WHERE is_active
		ORDER BY display_rank, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bays: %w", err)
	}
	defer rows.Close()

	var bays []booking.Bay
	for rows.Next() {
		var bay booking.Bay
		if err := rows.Scan(&bay.ID, &bay.Name, &bay.APIName, &bay.IsActive, &bay.DisplayRank); err != nil {
			return nil, fmt.Errorf("failed to scan bay: %w", err)
		}
		bays = append(bays, bay)
	}

	return bays, rows.Err()
}

// CreateBooking implements booking.BookingRepository.
func (r *bookingRepositoryImpl) CreateBooking(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bookings (
			id, customer_name, customer_phone, booking_date, start_time,
			duration_hours, bay_api_name, number_of_pax, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		b.ID, b.CustomerName, b.CustomerPhone, b.Date, b.StartTime,
		b.DurationHours, b.BayAPIName, b.NumberOfPax, b.Status, b.CreatedBy,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return b, nil
}

// GetBookingByID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetBookingByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, customer_name, customer_phone, booking_date, start_time,
		       duration_hours, bay_api_name, number_of_pax, status, created_by,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var b booking.Booking
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.Date,
		&b.StartTime,
		&b.DurationHours,
		&b.BayAPIName,
		&b.NumberOfPax,
		&b.Status,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// ListBookingsByDate implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ListBookingsByDate(ctx context.Context, date time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, customer_name, customer_phone, booking_date, start_time,
		       duration_hours, bay_api_name, number_of_pax, status, created_by,
		       created_at, updated_at
		FROM bookings
		WHERE booking_date = $1
		ORDER BY start_time, bay_api_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(
			&b.ID,
			&b.CustomerName,
			&b.CustomerPhone,
			&b.Date,
			&b.StartTime,
			&b.DurationHours,
			&b.BayAPIName,
			&b.NumberOfPax,
			&b.Status,
			&b.CreatedBy,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// CancelBooking implements booking.BookingRepository.
func (r *bookingRepositoryImpl) CancelBooking(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE bookings SET status = 'cancelled', updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

type availabilityCheckerImpl struct {
	db *database.DB
}

// NewAvailabilityChecker returns a checker backed by the check_bay_slot SQL
// function, which resolves overlaps against the full booking calendar.
func NewAvailabilityChecker(db *database.DB) booking.AvailabilityChecker {
	return &availabilityCheckerImpl{db: db}
}

// CheckBay implements booking.AvailabilityChecker.
func (c *availabilityCheckerImpl) CheckBay(ctx context.Context, bayAPIName string, date time.Time, startTime string, durationHours float64, excludeBookingID *string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	var available bool
	err := q.QueryRow(ctx,
		`SELECT check_bay_slot($1, $2, $3, $4, $5)`,
		bayAPIName, date, startTime, durationHours, excludeBookingID,
	).Scan(&available)
	if err != nil {
		return false, fmt.Errorf("failed to check bay availability: %w", err)
	}

	return available, nil
}
