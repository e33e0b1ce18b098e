package timesheet

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpdateTimeEntryRequest - admin correction of a recorded entry.
// Timestamps are RFC3339 strings; a malformed value is a field error.
type UpdateTimeEntryRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn == nil && r.ClockOut == nil {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "at least one of clock_in or clock_out is required"})
	}
	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	EntryID  string          `json:"entry_id"`
	ClockIn  string          `json:"clock_in"`
	ClockOut *string         `json:"clock_out,omitempty"`
	Hours    decimal.Decimal `json:"hours"`
}

type EntryErrorResponse struct {
	EntryID string `json:"entry_id"`
	Message string `json:"message"`
}

type DayReviewResponse struct {
	StaffID     string               `json:"staff_id"`
	StaffName   string               `json:"staff_name"`
	Date        string               `json:"date"`
	Sessions    []SessionResponse    `json:"sessions"`
	TotalHours  decimal.Decimal      `json:"total_hours"`
	Flags       []string             `json:"flags"`
	EntryErrors []EntryErrorResponse `json:"entry_errors,omitempty"`
}

type TimeEntryResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	Date      string  `json:"date"`
	ClockIn   string  `json:"clock_in"`
	ClockOut  *string `json:"clock_out,omitempty"`
	Source    string  `json:"source"`
}

type ClockInRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
