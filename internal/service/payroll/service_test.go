package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	settings      []payroll.CompensationSetting
	holidays      []payroll.PublicHoliday
	serviceCharge map[string]payroll.ServiceChargeSetting
}

func (f *fakePayrollRepo) UpsertCompensation(ctx context.Context, setting payroll.CompensationSetting) (payroll.CompensationSetting, error) {
	f.settings = append(f.settings, setting)
	return setting, nil
}

func (f *fakePayrollRepo) GetCompensationByStaff(ctx context.Context, staffID string, asOf time.Time) (payroll.CompensationSetting, error) {
	for _, s := range f.settings {
		if s.StaffID == staffID {
			return s, nil
		}
	}
	return payroll.CompensationSetting{}, payroll.ErrCompensationNotFound
}

func (f *fakePayrollRepo) ListCompensationActive(ctx context.Context, asOf time.Time) ([]payroll.CompensationSetting, error) {
	return f.settings, nil
}

func (f *fakePayrollRepo) CreateHoliday(ctx context.Context, holiday payroll.PublicHoliday) (payroll.PublicHoliday, error) {
	f.holidays = append(f.holidays, holiday)
	return holiday, nil
}

func (f *fakePayrollRepo) ListHolidays(ctx context.Context, from, to time.Time) ([]payroll.PublicHoliday, error) {
	return f.holidays, nil
}

func (f *fakePayrollRepo) UpdateHoliday(ctx context.Context, holiday payroll.PublicHoliday) (payroll.PublicHoliday, error) {
	return holiday, nil
}

func (f *fakePayrollRepo) DeleteHoliday(ctx context.Context, id string) error {
	return nil
}

func (f *fakePayrollRepo) GetHolidayByID(ctx context.Context, id string) (payroll.PublicHoliday, error) {
	return payroll.PublicHoliday{}, payroll.ErrHolidayNotFound
}

func (f *fakePayrollRepo) UpsertServiceCharge(ctx context.Context, setting payroll.ServiceChargeSetting) (payroll.ServiceChargeSetting, error) {
	f.serviceCharge[setting.Month] = setting
	return setting, nil
}

func (f *fakePayrollRepo) GetServiceCharge(ctx context.Context, month string) (payroll.ServiceChargeSetting, error) {
	setting, ok := f.serviceCharge[month]
	if !ok {
		return payroll.ServiceChargeSetting{}, payroll.ErrServiceChargeNotFound
	}
	return setting, nil
}

type fakeEntryRepo struct {
	entries []timesheet.TimeEntry
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
}

func (f *fakeEntryRepo) GetOpenByStaff(ctx context.Context, staffID string) (*timesheet.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListByMonth(ctx context.Context, month time.Time) ([]timesheet.TimeEntry, error) {
	return f.entries, nil
}

func (f *fakeEntryRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	return nil
}

type noStaffRepo struct{}

func (noStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	return s, nil
}

func (noStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (noStaffRepo) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	return nil, nil
}

func (noStaffRepo) Update(ctx context.Context, s staff.Staff) error {
	return nil
}

func (noStaffRepo) GetActive(ctx context.Context) ([]staff.Staff, error) {
	return nil, nil
}

func newPayrollTestService() (payroll.PayrollService, *fakePayrollRepo, *fakeEntryRepo) {
	payrollRepo := &fakePayrollRepo{serviceCharge: map[string]payroll.ServiceChargeSetting{}}
	entryRepo := &fakeEntryRepo{}
	svc := NewPayrollService(nil, payrollRepo, entryRepo, noStaffRepo{}, testPayrollConfig())
	return svc, payrollRepo, entryRepo
}

func shiftEntry(t *testing.T, staffID, name, date, in, out string) timesheet.TimeEntry {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	clockIn, err := time.Parse("2006-01-02 15:04", date+" "+in)
	require.NoError(t, err)
	clockOut, err := time.Parse("2006-01-02 15:04", date+" "+out)
	require.NoError(t, err)
	return timesheet.TimeEntry{
		ID:        staffID + "-" + date,
		StaffID:   staffID,
		Date:      d,
		ClockIn:   clockIn,
		ClockOut:  &clockOut,
		StaffName: &name,
	}
}

func hourlySetting(staffID, name string, rate int64, eligible bool) payroll.CompensationSetting {
	return payroll.CompensationSetting{
		ID:                      "cs-" + staffID,
		StaffID:                 staffID,
		Type:                    payroll.CompensationHourly,
		HourlyRate:              decimal.NewFromInt(rate),
		IsServiceChargeEligible: eligible,
		StaffName:               &name,
	}
}

func TestCalculations_MissingCompensationAborts(t *testing.T) {
	svc, payrollRepo, entryRepo := newPayrollTestService()
	payrollRepo.settings = []payroll.CompensationSetting{
		hourlySetting("s1", "Alice", 100, false),
	}
	entryRepo.entries = []timesheet.TimeEntry{
		shiftEntry(t, "s1", "Alice", "2025-07-10", "09:00", "17:00"),
		shiftEntry(t, "s2", "Bob", "2025-07-10", "10:00", "18:00"),
	}

	_, err := svc.Calculations(context.Background(), "2025-07")
	require.Error(t, err)

	var missing *payroll.MissingCompensationError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "s2", missing.StaffID)
	assert.Equal(t, "Bob", missing.StaffName)
}

func TestCalculations_ZeroHourEligibleStaffGetShare(t *testing.T) {
	svc, payrollRepo, entryRepo := newPayrollTestService()
	payrollRepo.settings = []payroll.CompensationSetting{
		hourlySetting("s1", "Alice", 100, true),
		hourlySetting("s2", "Bob", 100, true),
		hourlySetting("s3", "Carol", 100, false),
	}
	payrollRepo.serviceCharge["2025-07"] = payroll.ServiceChargeSetting{
		Month:       "2025-07",
		TotalAmount: decimal.NewFromInt(1000),
	}
	// Only Alice worked this month.
	entryRepo.entries = []timesheet.TimeEntry{
		shiftEntry(t, "s1", "Alice", "2025-07-10", "09:00", "17:00"),
	}

	resp, err := svc.Calculations(context.Background(), "2025-07")
	require.NoError(t, err)

	// Bob is eligible with zero hours and still receives his share; Carol
	// has neither hours nor a share and is omitted.
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Alice", resp.Results[0].StaffName)
	assert.Equal(t, "Bob", resp.Results[1].StaffName)

	share := decimal.NewFromInt(500)
	alice := resp.Results[0]
	assert.True(t, alice.ServiceCharge.Equal(share), "got %s", alice.ServiceCharge)
	assert.True(t, alice.BasePay.Equal(decimal.NewFromInt(800)), "got %s", alice.BasePay)

	bob := resp.Results[1]
	assert.Equal(t, 0, bob.WorkingDays)
	assert.True(t, bob.ServiceCharge.Equal(share), "got %s", bob.ServiceCharge)
	assert.True(t, bob.TotalPayout.Equal(share), "got %s", bob.TotalPayout)

	// 800 base + 500 share for Alice, 500 share for Bob.
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(1800)), "got %s", resp.Total)
}

func TestCalculations_InvalidMonth(t *testing.T) {
	svc, _, _ := newPayrollTestService()

	_, err := svc.Calculations(context.Background(), "2025-13")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}
