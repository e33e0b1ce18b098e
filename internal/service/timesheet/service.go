package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lengolf/lengolf-backend-go/internal/config"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	db        *database.DB
	entryRepo timesheet.TimeEntryRepository
	staffRepo staff.StaffRepository
	bounds    timesheet.SessionBounds
}

func NewTimesheetService(
	db *database.DB,
	entryRepo timesheet.TimeEntryRepository,
	staffRepo staff.StaffRepository,
	payrollCfg config.PayrollConfig,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:        db,
		entryRepo: entryRepo,
		staffRepo: staffRepo,
		bounds: timesheet.SessionBounds{
			MinSessionHours: payrollCfg.MinSessionHours,
			MaxSessionHours: payrollCfg.MaxSessionHours,
			MinDailyHours:   payrollCfg.MinDailyHours,
			MaxDailyHours:   payrollCfg.MaxDailyHours,
		},
	}
}

func (s *TimesheetServiceImpl) ClockIn(ctx context.Context, req timesheet.ClockInRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	if !member.IsActive {
		return timesheet.TimeEntryResponse{}, staff.ErrStaffInactive
	}

	// An open entry stays open; clocking in again would orphan it.
	if open, err := s.entryRepo.GetOpenByStaff(ctx, req.StaffID); err != nil {
		return timesheet.TimeEntryResponse{}, err
	} else if open != nil {
		return timesheet.TimeEntryResponse{}, timesheet.ErrAlreadyClockedIn
	}

	now := time.Now()
	created, err := s.entryRepo.Create(ctx, timesheet.TimeEntry{
		ID:      uuid.New().String(),
		StaffID: req.StaffID,
		Date:    now.Truncate(24 * time.Hour),
		ClockIn: now,
		Source:  timesheet.SourceDevice,
	})
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return mapToEntryResponse(created), nil
}

func (s *TimesheetServiceImpl) ClockOut(ctx context.Context, req timesheet.ClockOutRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	open, err := s.entryRepo.GetOpenByStaff(ctx, req.StaffID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	if open == nil {
		return timesheet.TimeEntryResponse{}, timesheet.ErrNotClockedIn
	}

	now := time.Now()
	open.ClockOut = &now
	if err := s.entryRepo.Update(ctx, *open); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return mapToEntryResponse(*open), nil
}

func (s *TimesheetServiceImpl) ReviewEntries(ctx context.Context, month string) ([]timesheet.DayReviewResponse, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	entries, err := s.entryRepo.ListByMonth(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	summaries := timesheet.AggregateEntries(entries, s.bounds)

	reviews := make([]timesheet.DayReviewResponse, 0, len(summaries))
	for _, sum := range summaries {
		// Only flagged days need eyes on them.
		if len(sum.Flags) == 0 && len(sum.EntryErrors) == 0 {
			continue
		}
		reviews = append(reviews, mapToReviewResponse(sum))
	}

	return reviews, nil
}

func (s *TimesheetServiceImpl) UpdateEntry(ctx context.Context, req timesheet.UpdateTimeEntryRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	if req.ClockIn != nil {
		t, _ := validator.IsValidDateTime(*req.ClockIn)
		entry.ClockIn = t
		entry.Date = t.Truncate(24 * time.Hour)
	}
	if req.ClockOut != nil {
		t, _ := validator.IsValidDateTime(*req.ClockOut)
		entry.ClockOut = &t
	}

	if entry.ClockOut != nil && !entry.ClockOut.After(entry.ClockIn) {
		return timesheet.TimeEntryResponse{}, timesheet.ErrClockOutBeforeIn
	}

	entry.Source = timesheet.SourceAdmin
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return mapToEntryResponse(entry), nil
}

// ========== HELPERS ==========

func mapToEntryResponse(e timesheet.TimeEntry) timesheet.TimeEntryResponse {
	var clockOut *string
	if e.ClockOut != nil {
		str := e.ClockOut.Format(time.RFC3339)
		clockOut = &str
	}

	return timesheet.TimeEntryResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		StaffName: e.StaffName,
		Date:      e.Date.Format("2006-01-02"),
		ClockIn:   e.ClockIn.Format(time.RFC3339),
		ClockOut:  clockOut,
		Source:    string(e.Source),
	}
}

func mapToReviewResponse(sum timesheet.DaySummary) timesheet.DayReviewResponse {
	sessions := make([]timesheet.SessionResponse, 0, len(sum.Sessions))
	for _, sess := range sum.Sessions {
		var clockOut *string
		if sess.ClockOut != nil {
			str := sess.ClockOut.Format(time.RFC3339)
			clockOut = &str
		}
		sessions = append(sessions, timesheet.SessionResponse{
			EntryID:  sess.EntryID,
			ClockIn:  sess.ClockIn.Format(time.RFC3339),
			ClockOut: clockOut,
			Hours:    sess.Hours,
		})
	}

	var entryErrors []timesheet.EntryErrorResponse
	for _, e := range sum.EntryErrors {
		entryErrors = append(entryErrors, timesheet.EntryErrorResponse{EntryID: e.EntryID, Message: e.Message})
	}

	return timesheet.DayReviewResponse{
		StaffID:     sum.StaffID,
		StaffName:   sum.StaffName,
		Date:        sum.Date.Format("2006-01-02"),
		Sessions:    sessions,
		TotalHours:  sum.TotalHours,
		Flags:       sum.Flags,
		EntryErrors: entryErrors,
	}
}
