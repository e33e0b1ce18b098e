package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrCompensationNotFound  = errors.New("compensation setting not found")
	ErrHolidayNotFound       = errors.New("public holiday not found")
	ErrHolidayDateExists     = errors.New("a public holiday already exists on this date")
	ErrServiceChargeNotFound = errors.New("service charge not set for this month")
	ErrInvalidMonth          = errors.New("invalid payroll month")
)

// MissingCompensationError reports staff members that have time entries in
// the period but no compensation setting. The calculation refuses to default
// them to zero pay; the caller gets enough detail to fix the configuration.
type MissingCompensationError struct {
	StaffID   string
	StaffName string
}

func (e *MissingCompensationError) Error() string {
	return fmt.Sprintf("no compensation setting for staff %s (%s)", e.StaffName, e.StaffID)
}
