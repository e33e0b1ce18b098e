package booking

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

// CheckSlotRequest mirrors the POS front desk payload: field names follow
// the client wire format.
type CheckSlotRequest struct {
	Date               string  `json:"date"`       // "YYYY-MM-DD"
	StartTime          string  `json:"start_time"` // "HH:MM"
	Duration           float64 `json:"duration"`   // hours
	BookingIDToExclude *string `json:"bookingIdToExclude,omitempty"`
}

func (r *CheckSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.Duration <= 0 || r.Duration > 12 {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "must be between 0 and 12 hours"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration"`
	BayAPIName    string  `json:"bay_api_name"`
	NumberOfPax   int     `json:"number_of_pax"`
	CreatedBy     string  `json:"-"` // staff id from the auth token
}

func (r *CreateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{Field: "customer_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.DurationHours <= 0 || r.DurationHours > 12 {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "must be between 0 and 12 hours"})
	}
	if validator.IsEmpty(r.BayAPIName) {
		errs = append(errs, validator.ValidationError{Field: "bay_api_name", Message: "is required"})
	}
	if r.NumberOfPax < 1 {
		errs = append(errs, validator.ValidationError{Field: "number_of_pax", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration"`
	BayAPIName    string  `json:"bay_api_name"`
	NumberOfPax   int     `json:"number_of_pax"`
	Status        string  `json:"status"`
}
