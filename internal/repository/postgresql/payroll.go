package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// UpsertCompensation implements payroll.PayrollRepository.
//
// One row per staff member and effective date; re-saving the same effective
// date overwrites it.
func (r *payrollRepositoryImpl) UpsertCompensation(ctx context.Context, setting payroll.CompensationSetting) (payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_settings (
			id, staff_id, compensation_type, base_salary, hourly_rate,
			daily_allowance, is_service_charge_eligible, effective_from
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (staff_id, effective_from) DO UPDATE
		SET compensation_type = EXCLUDED.compensation_type,
		    base_salary = EXCLUDED.base_salary,
		    hourly_rate = EXCLUDED.hourly_rate,
		    daily_allowance = EXCLUDED.daily_allowance,
		    is_service_charge_eligible = EXCLUDED.is_service_charge_eligible,
		    updated_at = NOW()
		RETURNING id, staff_id, compensation_type, base_salary, hourly_rate,
		          daily_allowance, is_service_charge_eligible, effective_from,
		          created_at, updated_at
	`

	var saved payroll.CompensationSetting
	err := q.QueryRow(ctx, query,
		setting.ID, setting.StaffID, setting.Type, setting.BaseSalary, setting.HourlyRate,
		setting.DailyAllowance, setting.IsServiceChargeEligible, setting.EffectiveFrom,
	).Scan(
		&saved.ID,
		&saved.StaffID,
		&saved.Type,
		&saved.BaseSalary,
		&saved.HourlyRate,
		&saved.DailyAllowance,
		&saved.IsServiceChargeEligible,
		&saved.EffectiveFrom,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return payroll.CompensationSetting{}, fmt.Errorf("failed to upsert compensation setting: %w", err)
	}

	return saved, nil
}

// GetCompensationByStaff implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetCompensationByStaff(ctx context.Context, staffID string, asOf time.Time) (payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.staff_id, c.compensation_type, c.base_salary, c.hourly_rate,
		       c.daily_allowance, c.is_service_charge_eligible, c.effective_from,
		       c.created_at, c.updated_at, s.name
		FROM compensation_settings c
		JOIN staff s ON s.id = c.staff_id
		WHERE c.staff_id = $1 AND c.effective_from <= $2
		ORDER BY c.effective_from DESC
		LIMIT 1
	`

	var setting payroll.CompensationSetting
	err := q.QueryRow(ctx, query, staffID, asOf).Scan(
		&setting.ID,
		&setting.StaffID,
		&setting.Type,
		&setting.BaseSalary,
		&setting.HourlyRate,
		&setting.DailyAllowance,
		&setting.IsServiceChargeEligible,
		&setting.EffectiveFrom,
		&setting.CreatedAt,
		&setting.UpdatedAt,
		&setting.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CompensationSetting{}, payroll.ErrCompensationNotFound
		}
		return payroll.CompensationSetting{}, fmt.Errorf("failed to get compensation setting: %w", err)
	}

	return setting, nil
}

// ListCompensationActive implements payroll.PayrollRepository.
//
// Returns the single newest setting per active staff member whose effective
// date is not in the future of asOf.
func (r *payrollRepositoryImpl) ListCompensationActive(ctx context.Context, asOf time.Time) ([]payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (c.staff_id)
		       c.id, c.staff_id, c.compensation_type, c.base_salary, c.hourly_rate,
		       c.daily_allowance, c.is_service_charge_eligible, c.effective_from,
		       c.created_at, c.updated_at, s.name
		FROM compensation_settings c
		JOIN staff s ON s.id = c.staff_id
		WHERE c.effective_from <= $1 AND s.is_active
		ORDER BY c.staff_id, c.effective_from DESC
	`

	rows, err := q.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation settings: %w", err)
	}
	defer rows.Close()

	var settings []payroll.CompensationSetting
	for rows.Next() {
		var setting payroll.CompensationSetting
		if err := rows.Scan(
			&setting.ID,
			&setting.StaffID,
			&setting.Type,
			&setting.BaseSalary,
			&setting.HourlyRate,
			&setting.DailyAllowance,
			&setting.IsServiceChargeEligible,
			&setting.EffectiveFrom,
			&setting.CreatedAt,
			&setting.UpdatedAt,
			&setting.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compensation setting: %w", err)
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}

// CreateHoliday implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateHoliday(ctx context.Context, holiday payroll.PublicHoliday) (payroll.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, holiday_date, holiday_name)
		VALUES ($1, $2, $3)
		RETURNING id, holiday_date, holiday_name, created_at, updated_at
	`

	var created payroll.PublicHoliday
	err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name).Scan(
		&created.ID,
		&created.Date,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return payroll.PublicHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// ListHolidays implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListHolidays(ctx context.Context, from, to time.Time) ([]payroll.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, holiday_date, holiday_name, created_at, updated_at
		FROM public_holidays
		WHERE holiday_date >= $1 AND holiday_date < $2
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []payroll.PublicHoliday
	for rows.Next() {
		var h payroll.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// UpdateHoliday implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateHoliday(ctx context.Context, holiday payroll.PublicHoliday) (payroll.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE public_holidays
		SET holiday_date = $1, holiday_name = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, holiday_date, holiday_name, created_at, updated_at
	`

	var updated payroll.PublicHoliday
	err := q.QueryRow(ctx, query, holiday.Date, holiday.Name, holiday.ID).Scan(
		&updated.ID,
		&updated.Date,
		&updated.Name,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PublicHoliday{}, payroll.ErrHolidayNotFound
		}
		return payroll.PublicHoliday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return updated, nil
}

// DeleteHoliday implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteHoliday(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrHolidayNotFound
	}

	return nil
}

// GetHolidayByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetHolidayByID(ctx context.Context, id string) (payroll.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, holiday_date, holiday_name, created_at, updated_at
		FROM public_holidays
		WHERE id = $1
	`

	var h payroll.PublicHoliday
	err := q.QueryRow(ctx, query, id).Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PublicHoliday{}, payroll.ErrHolidayNotFound
		}
		return payroll.PublicHoliday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

// UpsertServiceCharge implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertServiceCharge(ctx context.Context, setting payroll.ServiceChargeSetting) (payroll.ServiceChargeSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO service_charge_settings (month, total_amount)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE
		SET total_amount = EXCLUDED.total_amount, updated_at = NOW()
		RETURNING month, total_amount, updated_at
	`

	var saved payroll.ServiceChargeSetting
	err := q.QueryRow(ctx, query, setting.Month, setting.TotalAmount).Scan(
		&saved.Month,
		&saved.TotalAmount,
		&saved.UpdatedAt,
	)
	if err != nil {
		return payroll.ServiceChargeSetting{}, fmt.Errorf("failed to upsert service charge: %w", err)
	}

	return saved, nil
}

// GetServiceCharge implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetServiceCharge(ctx context.Context, month string) (payroll.ServiceChargeSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month, total_amount, updated_at
		FROM service_charge_settings
		WHERE month = $1
	`

	var setting payroll.ServiceChargeSetting
	err := q.QueryRow(ctx, query, month).Scan(&setting.Month, &setting.TotalAmount, &setting.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ServiceChargeSetting{}, payroll.ErrServiceChargeNotFound
		}
		return payroll.ServiceChargeSetting{}, fmt.Errorf("failed to get service charge: %w", err)
	}

	return setting, nil
}
