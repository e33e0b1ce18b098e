package payroll

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPENSATION DTOs ==========

type UpsertCompensationRequest struct {
	StaffID                 string           `json:"-"`
	Type                    string           `json:"type"` // "salary" or "hourly"
	BaseSalary              *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate              *decimal.Decimal `json:"hourly_rate,omitempty"`
	DailyAllowance          *decimal.Decimal `json:"daily_allowance,omitempty"`
	IsServiceChargeEligible bool             `json:"is_service_charge_eligible"`
	EffectiveFrom           string           `json:"effective_from"` // "YYYY-MM-DD"
}

func (r *UpsertCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Type {
	case string(CompensationSalary):
		if r.BaseSalary == nil || !r.BaseSalary.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive for salaried staff"})
		}
	case string(CompensationHourly):
		if r.HourlyRate == nil || !r.HourlyRate.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be positive for hourly staff"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'salary' or 'hourly'"})
	}
	if r.DailyAllowance != nil && r.DailyAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_allowance", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompensationResponse struct {
	ID                      string          `json:"id"`
	StaffID                 string          `json:"staff_id"`
	StaffName               *string         `json:"staff_name,omitempty"`
	Type                    string          `json:"type"`
	BaseSalary              decimal.Decimal `json:"base_salary"`
	HourlyRate              decimal.Decimal `json:"hourly_rate"`
	DailyAllowance          decimal.Decimal `json:"daily_allowance"`
	IsServiceChargeEligible bool            `json:"is_service_charge_eligible"`
	EffectiveFrom           string          `json:"effective_from"`
}

// ========== HOLIDAY DTOs ==========

type CreateHolidayRequest struct {
	Date string `json:"holiday_date"` // "YYYY-MM-DD"
	Name string `json:"holiday_name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "holiday_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID   string  `json:"-"`
	Date *string `json:"holiday_date,omitempty"`
	Name *string `json:"holiday_name,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "holiday_name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"holiday_date"`
	Name string `json:"holiday_name"`
}

// ========== SERVICE CHARGE DTOs ==========

type SetServiceChargeRequest struct {
	Month       string          `json:"-"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func (r *SetServiceChargeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ServiceChargeResponse struct {
	Month          string          `json:"month"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	EligibleStaff  int             `json:"eligible_staff"`
	PerStaffAmount decimal.Decimal `json:"per_staff_amount"`
}

// ========== CALCULATION DTOs ==========

type PayrollResultResponse struct {
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	CompensationType string          `json:"compensation_type"`
	WorkingDays      int             `json:"working_days"`
	RegularHours     decimal.Decimal `json:"regular_hours"`
	OTHours          decimal.Decimal `json:"ot_hours"`
	HolidayHours     decimal.Decimal `json:"holiday_hours"`
	BasePay          decimal.Decimal `json:"base_pay"`
	OTPay            decimal.Decimal `json:"ot_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	TotalAllowance   decimal.Decimal `json:"total_allowance"`
	ServiceCharge    decimal.Decimal `json:"service_charge"`
	TotalPayout      decimal.Decimal `json:"total_payout"`
}

type CalculationsResponse struct {
	Month   string                  `json:"month"`
	Results []PayrollResultResponse `json:"results"`
	Total   decimal.Decimal         `json:"total"`
}
