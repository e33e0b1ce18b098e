package payroll

import (
	"github.com/lengolf/lengolf-backend-go/internal/config"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// Calculator turns aggregated day summaries into a PayrollResult. All
// thresholds and multipliers come from configuration; nothing here touches
// the database.
type Calculator struct {
	cfg config.PayrollConfig
}

func NewCalculator(cfg config.PayrollConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// effectiveHourlyRate is the rate OT and holiday pay are priced at. Salaried
// staff get a derived rate: monthly base over the configured divisor.
func (c *Calculator) effectiveHourlyRate(setting payroll.CompensationSetting) decimal.Decimal {
	if setting.Type == payroll.CompensationSalary {
		return setting.BaseSalary.Div(c.cfg.SalariedHourDivisor)
	}
	return setting.HourlyRate
}

// Calculate computes one staff member's payout for the month.
//
// Hours on a public holiday are pulled out of regular hours entirely and
// paid at the holiday multiplier; the daily OT split applies to non-holiday
// days only. Days with at least one completed session count toward the
// allowance.
func (c *Calculator) Calculate(
	setting payroll.CompensationSetting,
	staffName string,
	days []timesheet.DaySummary,
	holidays map[string]bool,
	serviceCharge decimal.Decimal,
) payroll.PayrollResult {
	regularHours := decimal.Zero
	otHours := decimal.Zero
	holidayHours := decimal.Zero
	workingDays := 0

	for _, day := range days {
		if !day.TotalHours.IsPositive() {
			continue
		}
		workingDays++

		if holidays[day.Date.Format("2006-01-02")] {
			holidayHours = holidayHours.Add(day.TotalHours)
			continue
		}

		if day.TotalHours.GreaterThan(c.cfg.StandardShiftHours) {
			regularHours = regularHours.Add(c.cfg.StandardShiftHours)
			otHours = otHours.Add(day.TotalHours.Sub(c.cfg.StandardShiftHours))
		} else {
			regularHours = regularHours.Add(day.TotalHours)
		}
	}

	rate := c.effectiveHourlyRate(setting)

	var basePay decimal.Decimal
	if setting.Type == payroll.CompensationSalary {
		basePay = setting.BaseSalary
	} else {
		basePay = regularHours.Mul(rate)
	}

	otPay := otHours.Mul(rate).Mul(c.cfg.OTMultiplier)
	holidayPay := holidayHours.Mul(rate).Mul(c.cfg.HolidayMultiplier)
	totalAllowance := setting.DailyAllowance.Mul(decimal.NewFromInt(int64(workingDays)))

	basePay = basePay.Round(2)
	otPay = otPay.Round(2)
	holidayPay = holidayPay.Round(2)
	totalAllowance = totalAllowance.Round(2)

	return payroll.PayrollResult{
		StaffID:          setting.StaffID,
		StaffName:        staffName,
		CompensationType: setting.Type,
		WorkingDays:      workingDays,
		RegularHours:     regularHours,
		OTHours:          otHours,
		HolidayHours:     holidayHours,
		BasePay:          basePay,
		OTPay:            otPay,
		HolidayPay:       holidayPay,
		TotalAllowance:   totalAllowance,
		ServiceCharge:    serviceCharge,
		TotalPayout:      basePay.Add(otPay).Add(holidayPay).Add(totalAllowance).Add(serviceCharge),
	}
}

// ServiceChargeShare divides the monthly pool evenly across eligible staff.
// The share is rounded down to the satang so share x count never exceeds the
// pool. Zero eligible staff means zero share, not a division error.
func ServiceChargeShare(total decimal.Decimal, eligibleCount int) decimal.Decimal {
	if eligibleCount <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(eligibleCount))).RoundDown(2)
}
