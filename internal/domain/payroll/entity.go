package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompensationType enum
type CompensationType string

const (
	CompensationSalary CompensationType = "salary"
	CompensationHourly CompensationType = "hourly"
)

// CompensationSetting - per-staff pay configuration. Exactly one setting is
// active per staff member at a time; a new EffectiveFrom supersedes the old.
type CompensationSetting struct {
	ID                      string
	StaffID                 string
	Type                    CompensationType
	BaseSalary              decimal.Decimal // monthly, salary type only
	HourlyRate              decimal.Decimal // hourly type only
	DailyAllowance          decimal.Decimal
	IsServiceChargeEligible bool
	EffectiveFrom           time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// Joined fields
	StaffName *string
}

// PublicHoliday - calendar entry that reclassifies worked hours as holiday
// hours. Date is unique.
type PublicHoliday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceChargeSetting - pooled monthly gratuity total, admin entered.
// One row per month, overwritten on save.
type ServiceChargeSetting struct {
	Month       string // "2006-01"
	TotalAmount decimal.Decimal
	UpdatedAt   time.Time
}

// PayrollResult - derived per-staff monthly payout. Never persisted;
// recomputed on every request from entries, settings and the holiday
// calendar.
type PayrollResult struct {
	StaffID          string
	StaffName        string
	CompensationType CompensationType
	WorkingDays      int
	RegularHours     decimal.Decimal
	OTHours          decimal.Decimal
	HolidayHours     decimal.Decimal
	BasePay          decimal.Decimal
	OTPay            decimal.Decimal
	HolidayPay       decimal.Decimal
	TotalAllowance   decimal.Decimal
	ServiceCharge    decimal.Decimal
	TotalPayout      decimal.Decimal
}
