package timesheet

import "errors"

var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrClockOutBeforeIn = errors.New("clock-out must be after clock-in")
	ErrAlreadyClockedIn = errors.New("staff member already has an open time entry")
	ErrNotClockedIn     = errors.New("staff member has no open time entry")
)
