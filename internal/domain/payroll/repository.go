package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll configuration.
type PayrollRepository interface {
	// Compensation settings
	UpsertCompensation(ctx context.Context, setting CompensationSetting) (CompensationSetting, error)
	GetCompensationByStaff(ctx context.Context, staffID string, asOf time.Time) (CompensationSetting, error)
	ListCompensationActive(ctx context.Context, asOf time.Time) ([]CompensationSetting, error)

	// Public holidays
	CreateHoliday(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	ListHolidays(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
	UpdateHoliday(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	DeleteHoliday(ctx context.Context, id string) error
	GetHolidayByID(ctx context.Context, id string) (PublicHoliday, error)

	// Service charge
	UpsertServiceCharge(ctx context.Context, setting ServiceChargeSetting) (ServiceChargeSetting, error)
	GetServiceCharge(ctx context.Context, month string) (ServiceChargeSetting, error)
}
