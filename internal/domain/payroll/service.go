package payroll

import "context"

// PayrollService defines business logic for payroll computation and its
// configuration surfaces.
type PayrollService interface {
	// Calculations recomputes the month's PayrollResult for every staff
	// member with time entries. Returns MissingCompensationError if any of
	// them has no compensation setting.
	Calculations(ctx context.Context, month string) (CalculationsResponse, error)

	// ExportCSV renders the month's calculations as a CSV document.
	ExportCSV(ctx context.Context, month string) ([]byte, string, error)

	// Compensation settings
	UpsertCompensation(ctx context.Context, req UpsertCompensationRequest) (CompensationResponse, error)
	ListCompensation(ctx context.Context) ([]CompensationResponse, error)

	// Public holidays
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	// Service charge
	SetServiceCharge(ctx context.Context, req SetServiceChargeRequest) (ServiceChargeResponse, error)
	GetServiceCharge(ctx context.Context, month string) (ServiceChargeResponse, error)
}
