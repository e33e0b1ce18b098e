package timesheet

import "context"

// TimesheetService defines business logic for time entry handling.
type TimesheetService interface {
	// ClockIn opens a new entry for the staff member.
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes the staff member's open entry.
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// ReviewEntries aggregates a month's entries into flagged day summaries
	// for admin review.
	ReviewEntries(ctx context.Context, month string) ([]DayReviewResponse, error)

	// UpdateEntry applies an admin correction to clock times.
	UpdateEntry(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
}
