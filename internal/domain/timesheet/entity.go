package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource enum
type EntrySource string

const (
	SourceDevice EntrySource = "device"
	SourceAPI    EntrySource = "api"
	SourceAdmin  EntrySource = "admin"
)

// TimeEntry - a raw clock-in/clock-out pair recorded by the time clock.
// ClockOut is nil while the session is still open.
type TimeEntry struct {
	ID        string
	StaffID   string
	Date      time.Time // venue-local calendar day
	ClockIn   time.Time
	ClockOut  *time.Time
	Source    EntrySource
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	StaffName *string
}

// Session - one completed or open clock-in/clock-out pairing
type Session struct {
	EntryID  string
	ClockIn  time.Time
	ClockOut *time.Time
	Hours    decimal.Decimal // zero while the session is open
}

// Review flags, non-exclusive
const (
	FlagMissingClockout = "missing_clockout"
	FlagShortSession    = "short_session"
	FlagLongSession     = "long_session"
	FlagShortDay        = "short_day"
	FlagLongDay         = "long_day"
)

// DaySummary - all sessions for one staff member on one calendar day.
// TotalHours counts completed sessions only; open sessions are excluded
// from totals but still flagged for review.
type DaySummary struct {
	StaffID    string
	StaffName  string
	Date       time.Time
	Sessions   []Session
	TotalHours decimal.Decimal
	Flags      []string

	// EntryErrors records per-entry problems (bad timestamps, clock-out
	// before clock-in) without failing the whole batch.
	EntryErrors []EntryError
}

type EntryError struct {
	EntryID string
	Message string
}

// SessionBounds - configured review thresholds for session and day lengths
type SessionBounds struct {
	MinSessionHours decimal.Decimal
	MaxSessionHours decimal.Decimal
	MinDailyHours   decimal.Decimal
	MaxDailyHours   decimal.Decimal
}
