package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lengolf/lengolf-backend-go/internal/config"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
	entryRepo   timesheet.TimeEntryRepository
	staffRepo   staff.StaffRepository
	calc        *Calculator
	bounds      timesheet.SessionBounds
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	entryRepo timesheet.TimeEntryRepository,
	staffRepo staff.StaffRepository,
	payrollCfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
		entryRepo:   entryRepo,
		staffRepo:   staffRepo,
		calc:        NewCalculator(payrollCfg),
		bounds: timesheet.SessionBounds{
			MinSessionHours: payrollCfg.MinSessionHours,
			MaxSessionHours: payrollCfg.MaxSessionHours,
			MinDailyHours:   payrollCfg.MinDailyHours,
			MaxDailyHours:   payrollCfg.MaxDailyHours,
		},
	}
}

func (s *PayrollServiceImpl) Calculations(ctx context.Context, month string) (payroll.CalculationsResponse, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return payroll.CalculationsResponse{}, payroll.ErrInvalidMonth
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	entries, err := s.entryRepo.ListByMonth(ctx, monthStart)
	if err != nil {
		return payroll.CalculationsResponse{}, err
	}

	holidayRows, err := s.payrollRepo.ListHolidays(ctx, monthStart, monthEnd)
	if err != nil {
		return payroll.CalculationsResponse{}, err
	}
	holidays := make(map[string]bool, len(holidayRows))
	for _, h := range holidayRows {
		holidays[h.Date.Format("2006-01-02")] = true
	}

	settings, err := s.payrollRepo.ListCompensationActive(ctx, monthEnd.Add(-time.Second))
	if err != nil {
		return payroll.CalculationsResponse{}, err
	}
	settingByStaff := make(map[string]payroll.CompensationSetting, len(settings))
	eligibleCount := 0
	for _, setting := range settings {
		settingByStaff[setting.StaffID] = setting
		if setting.IsServiceChargeEligible {
			eligibleCount++
		}
	}

	share := decimal.Zero
	scSetting, err := s.payrollRepo.GetServiceCharge(ctx, month)
	switch {
	case err == nil:
		share = ServiceChargeShare(scSetting.TotalAmount, eligibleCount)
	case errors.Is(err, payroll.ErrServiceChargeNotFound):
		// No pool entered for the month; everyone's share stays zero.
	default:
		return payroll.CalculationsResponse{}, err
	}

	// Staff with entries but no compensation setting abort the whole
	// calculation: a silently zeroed payout is worse than an error.
	summariesByStaff := make(map[string][]timesheet.DaySummary)
	nameByStaff := make(map[string]string)
	for _, day := range timesheet.AggregateEntries(entries, s.bounds) {
		summariesByStaff[day.StaffID] = append(summariesByStaff[day.StaffID], day)
		nameByStaff[day.StaffID] = day.StaffName
	}
	for staffID, name := range nameByStaff {
		if _, ok := settingByStaff[staffID]; !ok {
			return payroll.CalculationsResponse{}, &payroll.MissingCompensationError{
				StaffID:   staffID,
				StaffName: name,
			}
		}
	}

	var results []payroll.PayrollResultResponse
	total := decimal.Zero
	for staffID, setting := range settingByStaff {
		days := summariesByStaff[staffID]
		staffShare := decimal.Zero
		if setting.IsServiceChargeEligible {
			staffShare = share
		}
		// Eligible staff with no hours this month still receive their
		// service charge share; skip only when there is nothing to pay.
		if len(days) == 0 && !staffShare.IsPositive() {
			continue
		}

		name := nameByStaff[staffID]
		if name == "" && setting.StaffName != nil {
			name = *setting.StaffName
		}

		result := s.calc.Calculate(setting, name, days, holidays, staffShare)
		results = append(results, mapToResultResponse(result))
		total = total.Add(result.TotalPayout)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].StaffName != results[j].StaffName {
			return results[i].StaffName < results[j].StaffName
		}
		return results[i].StaffID < results[j].StaffID
	})

	return payroll.CalculationsResponse{
		Month:   month,
		Results: results,
		Total:   total,
	}, nil
}

func (s *PayrollServiceImpl) ExportCSV(ctx context.Context, month string) ([]byte, string, error) {
	calcs, err := s.Calculations(ctx, month)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"staff_name", "compensation_type", "working_days",
		"regular_hours", "ot_hours", "holiday_hours",
		"base_pay", "ot_pay", "holiday_pay",
		"allowance", "service_charge", "total_payout",
	}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}
	for _, r := range calcs.Results {
		row := []string{
			r.StaffName, r.CompensationType, fmt.Sprintf("%d", r.WorkingDays),
			r.RegularHours.StringFixed(2), r.OTHours.StringFixed(2), r.HolidayHours.StringFixed(2),
			r.BasePay.StringFixed(2), r.OTPay.StringFixed(2), r.HolidayPay.StringFixed(2),
			r.TotalAllowance.StringFixed(2), r.ServiceCharge.StringFixed(2), r.TotalPayout.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("payroll-%s.csv", month), nil
}

// ========== COMPENSATION ==========

func (s *PayrollServiceImpl) UpsertCompensation(ctx context.Context, req payroll.UpsertCompensationRequest) (payroll.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CompensationResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return payroll.CompensationResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)
	setting := payroll.CompensationSetting{
		ID:                      uuid.New().String(),
		StaffID:                 req.StaffID,
		Type:                    payroll.CompensationType(req.Type),
		IsServiceChargeEligible: req.IsServiceChargeEligible,
		EffectiveFrom:           effectiveFrom,
	}
	if req.BaseSalary != nil {
		setting.BaseSalary = *req.BaseSalary
	}
	if req.HourlyRate != nil {
		setting.HourlyRate = *req.HourlyRate
	}
	if req.DailyAllowance != nil {
		setting.DailyAllowance = *req.DailyAllowance
	}

	saved, err := s.payrollRepo.UpsertCompensation(ctx, setting)
	if err != nil {
		return payroll.CompensationResponse{}, err
	}
	return mapToCompensationResponse(saved), nil
}

func (s *PayrollServiceImpl) ListCompensation(ctx context.Context) ([]payroll.CompensationResponse, error) {
	settings, err := s.payrollRepo.ListCompensationActive(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.CompensationResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, mapToCompensationResponse(setting))
	}
	return responses, nil
}

// ========== PUBLIC HOLIDAYS ==========

func (s *PayrollServiceImpl) CreateHoliday(ctx context.Context, req payroll.CreateHolidayRequest) (payroll.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	holiday, err := s.payrollRepo.CreateHoliday(ctx, payroll.PublicHoliday{
		ID:   uuid.New().String(),
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		// Check for duplicate date (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return payroll.HolidayResponse{}, payroll.ErrHolidayDateExists
			}
		}
		return payroll.HolidayResponse{}, err
	}
	return mapToHolidayResponse(holiday), nil
}

func (s *PayrollServiceImpl) ListHolidays(ctx context.Context, year int) ([]payroll.HolidayResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	holidays, err := s.payrollRepo.ListHolidays(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, mapToHolidayResponse(holiday))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdateHoliday(ctx context.Context, req payroll.UpdateHolidayRequest) (payroll.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.HolidayResponse{}, err
	}

	holiday, err := s.payrollRepo.GetHolidayByID(ctx, req.ID)
	if err != nil {
		return payroll.HolidayResponse{}, err
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		holiday.Date = date
	}
	if req.Name != nil {
		holiday.Name = *req.Name
	}

	updated, err := s.payrollRepo.UpdateHoliday(ctx, holiday)
	if err != nil {
		return payroll.HolidayResponse{}, err
	}
	return mapToHolidayResponse(updated), nil
}

func (s *PayrollServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteHoliday(ctx, id)
}

// ========== SERVICE CHARGE ==========

func (s *PayrollServiceImpl) SetServiceCharge(ctx context.Context, req payroll.SetServiceChargeRequest) (payroll.ServiceChargeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ServiceChargeResponse{}, err
	}

	saved, err := s.payrollRepo.UpsertServiceCharge(ctx, payroll.ServiceChargeSetting{
		Month:       req.Month,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return payroll.ServiceChargeResponse{}, err
	}
	return s.mapToServiceChargeResponse(ctx, saved)
}

func (s *PayrollServiceImpl) GetServiceCharge(ctx context.Context, month string) (payroll.ServiceChargeResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.ServiceChargeResponse{}, payroll.ErrInvalidMonth
	}

	setting, err := s.payrollRepo.GetServiceCharge(ctx, month)
	if err != nil {
		return payroll.ServiceChargeResponse{}, err
	}
	return s.mapToServiceChargeResponse(ctx, setting)
}

func (s *PayrollServiceImpl) mapToServiceChargeResponse(ctx context.Context, setting payroll.ServiceChargeSetting) (payroll.ServiceChargeResponse, error) {
	monthStart, _ := validator.IsValidMonth(setting.Month)
	settings, err := s.payrollRepo.ListCompensationActive(ctx, monthStart.AddDate(0, 1, 0).Add(-time.Second))
	if err != nil {
		return payroll.ServiceChargeResponse{}, err
	}

	eligibleCount := 0
	for _, cs := range settings {
		if cs.IsServiceChargeEligible {
			eligibleCount++
		}
	}

	return payroll.ServiceChargeResponse{
		Month:          setting.Month,
		TotalAmount:    setting.TotalAmount,
		EligibleStaff:  eligibleCount,
		PerStaffAmount: ServiceChargeShare(setting.TotalAmount, eligibleCount),
	}, nil
}

// ========== MAPPERS ==========

func mapToResultResponse(r payroll.PayrollResult) payroll.PayrollResultResponse {
	return payroll.PayrollResultResponse{
		StaffID:          r.StaffID,
		StaffName:        r.StaffName,
		CompensationType: string(r.CompensationType),
		WorkingDays:      r.WorkingDays,
		RegularHours:     r.RegularHours,
		OTHours:          r.OTHours,
		HolidayHours:     r.HolidayHours,
		BasePay:          r.BasePay,
		OTPay:            r.OTPay,
		HolidayPay:       r.HolidayPay,
		TotalAllowance:   r.TotalAllowance,
		ServiceCharge:    r.ServiceCharge,
		TotalPayout:      r.TotalPayout,
	}
}

func mapToCompensationResponse(s payroll.CompensationSetting) payroll.CompensationResponse {
	return payroll.CompensationResponse{
		ID:                      s.ID,
		StaffID:                 s.StaffID,
		StaffName:               s.StaffName,
		Type:                    string(s.Type),
		BaseSalary:              s.BaseSalary,
		HourlyRate:              s.HourlyRate,
		DailyAllowance:          s.DailyAllowance,
		IsServiceChargeEligible: s.IsServiceChargeEligible,
		EffectiveFrom:           s.EffectiveFrom.Format("2006-01-02"),
	}
}

func mapToHolidayResponse(h payroll.PublicHoliday) payroll.HolidayResponse {
	return payroll.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
