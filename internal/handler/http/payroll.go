package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Calculations
	GetCalculations(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)

	// Time entry review
	ReviewEntries(w http.ResponseWriter, r *http.Request)
	UpdateTimeEntry(w http.ResponseWriter, r *http.Request)

	// Compensation
	UpsertCompensation(w http.ResponseWriter, r *http.Request)
	ListCompensation(w http.ResponseWriter, r *http.Request)

	// Public holidays
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	// Service charge
	SetServiceCharge(w http.ResponseWriter, r *http.Request)
	GetServiceCharge(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService   payroll.PayrollService
	timesheetService timesheet.TimesheetService
}

func NewPayrollHandler(payrollService payroll.PayrollService, timesheetService timesheet.TimesheetService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService:   payrollService,
		timesheetService: timesheetService,
	}
}

// ========== CALCULATIONS ==========

func (h *payrollHandlerImpl) GetCalculations(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Calculations(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, fileName, err := h.payrollService.ExportCSV(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ========== TIME ENTRY REVIEW ==========

func (h *payrollHandlerImpl) ReviewEntries(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ReviewEntries(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timesheetService.UpdateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== COMPENSATION ==========

func (h *payrollHandlerImpl) UpsertCompensation(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "staffId")

	result, err := h.payrollService.UpsertCompensation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListCompensation(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListCompensation(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PUBLIC HOLIDAYS ==========

func (h *payrollHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", result)
}

func (h *payrollHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	result, err := h.payrollService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}

// ========== SERVICE CHARGE ==========

func (h *payrollHandlerImpl) SetServiceCharge(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetServiceChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Month = chi.URLParam(r, "month")

	result, err := h.payrollService.SetServiceCharge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetServiceCharge(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetServiceCharge(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
