package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
)

// TimesheetJobs sweeps for clock-ins that were never closed, so they show
// up in the payroll review queue before month end.
type TimesheetJobs struct {
	entryRepo       timesheet.TimeEntryRepository
	maxSessionHours time.Duration
}

func NewTimesheetJobs(entryRepo timesheet.TimeEntryRepository, maxSessionHours time.Duration) *TimesheetJobs {
	return &TimesheetJobs{
		entryRepo:       entryRepo,
		maxSessionHours: maxSessionHours,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_open_time_entries", 1*time.Hour, j.FlagOpenTimeEntries)
}

// FlagOpenTimeEntries logs every entry that has been open longer than the
// maximum session length. The entries stay untouched; admins close them via
// the review screen.
func (j *TimesheetJobs) FlagOpenTimeEntries(ctx context.Context) error {
	cutoff := time.Now().Add(-j.maxSessionHours)

	open, err := j.entryRepo.ListOpenBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, e := range open {
		slog.Warn("Time entry open past maximum session length",
			"entry_id", e.ID,
			"staff_id", e.StaffID,
			"clock_in", e.ClockIn,
		)
	}

	if len(open) > 0 {
		slog.Info("Open time entry sweep finished", "flagged", len(open))
	}
	return nil
}
