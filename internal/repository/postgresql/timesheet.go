package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

// Create implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (id, staff_id, entry_date, clock_in, clock_out, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, staff_id, entry_date, clock_in, clock_out, source, created_at, updated_at
	`

	var created timesheet.TimeEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.StaffID, entry.Date, entry.ClockIn, entry.ClockOut, entry.Source,
	).Scan(
		&created.ID,
		&created.StaffID,
		&created.Date,
		&created.ClockIn,
		&created.ClockOut,
		&created.Source,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

// GetByID implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.staff_id, t.entry_date, t.clock_in, t.clock_out, t.source,
		       t.created_at, t.updated_at, s.name
		FROM time_entries t
		JOIN staff s ON s.id = t.staff_id
		WHERE t.id = $1
	`

	var entry timesheet.TimeEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.StaffID,
		&entry.Date,
		&entry.ClockIn,
		&entry.ClockOut,
		&entry.Source,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

// GetOpenByStaff implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenByStaff(ctx context.Context, staffID string) (*timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, entry_date, clock_in, clock_out, source, created_at, updated_at
		FROM time_entries
		WHERE staff_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var entry timesheet.TimeEntry
	err := q.QueryRow(ctx, query, staffID).Scan(
		&entry.ID,
		&entry.StaffID,
		&entry.Date,
		&entry.ClockIn,
		&entry.ClockOut,
		&entry.Source,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return &entry, nil
}

// ListByMonth implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListByMonth(ctx context.Context, month time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT t.id, t.staff_id, t.entry_date, t.clock_in, t.clock_out, t.source,
		       t.created_at, t.updated_at, s.name
		FROM time_entries t
		JOIN staff s ON s.id = t.staff_id
		WHERE t.entry_date >= $1 AND t.entry_date < $2
		ORDER BY s.name, t.clock_in
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

// ListOpenBefore implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.staff_id, t.entry_date, t.clock_in, t.clock_out, t.source,
		       t.created_at, t.updated_at, s.name
		FROM time_entries t
		JOIN staff s ON s.id = t.staff_id
		WHERE t.clock_out IS NULL AND t.clock_in < $1
		ORDER BY t.clock_in
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open time entries: %w", err)
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

// Update implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET entry_date = $1, clock_in = $2, clock_out = $3, source = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, entry.Date, entry.ClockIn, entry.ClockOut, entry.Source, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}

	return nil
}

func scanTimeEntries(rows pgx.Rows) ([]timesheet.TimeEntry, error) {
	var entries []timesheet.TimeEntry
	for rows.Next() {
		var entry timesheet.TimeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.StaffID,
			&entry.Date,
			&entry.ClockIn,
			&entry.ClockOut,
			&entry.Source,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
