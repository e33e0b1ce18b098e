package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetOpenByStaff returns the staff member's open entry (no clock-out),
	// if any.
	GetOpenByStaff(ctx context.Context, staffID string) (*TimeEntry, error)

	// ListByMonth returns all entries whose date falls in the given month,
	// with staff names joined.
	ListByMonth(ctx context.Context, month time.Time) ([]TimeEntry, error)

	// ListOpenBefore returns entries still open whose clock-in is before
	// the cutoff. Used by the nightly review sweep.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error
}
