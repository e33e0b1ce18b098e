package payroll

import (
	"testing"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/config"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayrollConfig() config.PayrollConfig {
	return config.PayrollConfig{
		StandardShiftHours:  decimal.NewFromInt(8),
		OTMultiplier:        decimal.RequireFromString("1.5"),
		HolidayMultiplier:   decimal.NewFromInt(2),
		SalariedHourDivisor: decimal.NewFromInt(208),
	}
}

func dayOn(t *testing.T, date string, hours string) timesheet.DaySummary {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return timesheet.DaySummary{
		StaffID:    "s1",
		Date:       d,
		TotalHours: decimal.RequireFromString(hours),
	}
}

func TestCalculator_HourlyWithOvertime(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())
	setting := payroll.CompensationSetting{
		StaffID:    "s1",
		Type:       payroll.CompensationHourly,
		HourlyRate: decimal.NewFromInt(100),
	}

	// One 10 hour day: 8 regular + 2 OT at 1.5x.
	result := calc.Calculate(setting, "Alice", []timesheet.DaySummary{
		dayOn(t, "2025-06-02", "10"),
	}, nil, decimal.Zero)

	assert.Equal(t, 1, result.WorkingDays)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OTHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, result.BasePay.Equal(decimal.NewFromInt(800)), "got %s", result.BasePay)
	assert.True(t, result.OTPay.Equal(decimal.NewFromInt(300)), "got %s", result.OTPay)
	assert.True(t, result.TotalPayout.Equal(decimal.NewFromInt(1100)))
}

func TestCalculator_HolidayAbsorbsWholeDay(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())
	setting := payroll.CompensationSetting{
		StaffID:    "s1",
		Type:       payroll.CompensationHourly,
		HourlyRate: decimal.NewFromInt(100),
	}
	holidays := map[string]bool{"2025-06-03": true}

	// 10 hours on a public holiday: all 10 paid at the holiday multiplier,
	// no OT split.
	result := calc.Calculate(setting, "Alice", []timesheet.DaySummary{
		dayOn(t, "2025-06-03", "10"),
	}, holidays, decimal.Zero)

	assert.True(t, result.RegularHours.IsZero())
	assert.True(t, result.OTHours.IsZero())
	assert.True(t, result.HolidayHours.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.HolidayPay.Equal(decimal.NewFromInt(2000)), "got %s", result.HolidayPay)
	assert.True(t, result.BasePay.IsZero())
}

func TestCalculator_SalariedDerivedRate(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())
	setting := payroll.CompensationSetting{
		StaffID:    "s1",
		Type:       payroll.CompensationSalary,
		BaseSalary: decimal.NewFromInt(20800),
	}

	// Derived rate is 20800 / 208 = 100. Base pay stays the full salary
	// regardless of hours; OT is priced at the derived rate.
	result := calc.Calculate(setting, "Alice", []timesheet.DaySummary{
		dayOn(t, "2025-06-02", "9"),
	}, nil, decimal.Zero)

	assert.True(t, result.BasePay.Equal(decimal.NewFromInt(20800)))
	assert.True(t, result.OTHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, result.OTPay.Equal(decimal.NewFromInt(150)), "got %s", result.OTPay)
}

func TestCalculator_AllowancePerWorkedDay(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())
	setting := payroll.CompensationSetting{
		StaffID:        "s1",
		Type:           payroll.CompensationHourly,
		HourlyRate:     decimal.NewFromInt(100),
		DailyAllowance: decimal.NewFromInt(50),
	}

	days := []timesheet.DaySummary{
		dayOn(t, "2025-06-02", "8"),
		dayOn(t, "2025-06-03", "8"),
		dayOn(t, "2025-06-04", "0"), // no completed sessions, no allowance
	}
	result := calc.Calculate(setting, "Alice", days, nil, decimal.Zero)

	assert.Equal(t, 2, result.WorkingDays)
	assert.True(t, result.TotalAllowance.Equal(decimal.NewFromInt(100)))
}

func TestCalculator_PayoutIsSumOfComponents(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())
	setting := payroll.CompensationSetting{
		StaffID:        "s1",
		Type:           payroll.CompensationHourly,
		HourlyRate:     decimal.RequireFromString("87.5"),
		DailyAllowance: decimal.NewFromInt(40),
	}
	holidays := map[string]bool{"2025-06-05": true}
	serviceCharge := decimal.RequireFromString("1234.56")

	days := []timesheet.DaySummary{
		dayOn(t, "2025-06-02", "9.25"),
		dayOn(t, "2025-06-05", "6"),
	}
	result := calc.Calculate(setting, "Alice", days, holidays, serviceCharge)

	expected := result.BasePay.
		Add(result.OTPay).
		Add(result.HolidayPay).
		Add(result.TotalAllowance).
		Add(result.ServiceCharge)
	assert.True(t, result.TotalPayout.Equal(expected), "payout %s != components %s", result.TotalPayout, expected)
	assert.True(t, result.ServiceCharge.Equal(serviceCharge))
}

func TestServiceChargeShare(t *testing.T) {
	// 1000 / 3 floors to 333.33 so shares never exceed the pool.
	share := ServiceChargeShare(decimal.NewFromInt(1000), 3)
	assert.True(t, share.Equal(decimal.RequireFromString("333.33")), "got %s", share)

	total := share.Mul(decimal.NewFromInt(3))
	assert.True(t, total.LessThanOrEqual(decimal.NewFromInt(1000)))

	assert.True(t, ServiceChargeShare(decimal.NewFromInt(1000), 0).IsZero())
	assert.True(t, ServiceChargeShare(decimal.NewFromInt(1000), -2).IsZero())
}
