package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/booking"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/middleware"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type BookingHandler interface {
	CheckSlotForAllBays(w http.ResponseWriter, r *http.Request)
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	ListBookingsByDate(w http.ResponseWriter, r *http.Request)
	CancelBooking(w http.ResponseWriter, r *http.Request)
}

type bookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &bookingHandlerImpl{bookingService: bookingService}
}

// CheckSlotForAllBays implements BookingHandler.
//
// The response is a bare array, matching what the front desk client
// expects.
func (h *bookingHandlerImpl) CheckSlotForAllBays(w http.ResponseWriter, r *http.Request) {
	var req booking.CheckSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bookingService.CheckSlotForAllBays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

// CreateBooking implements BookingHandler.
func (h *bookingHandlerImpl) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = middleware.StaffID(r)

	result, err := h.bookingService.CreateBooking(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Booking created", result)
}

// GetBooking implements BookingHandler.
func (h *bookingHandlerImpl) GetBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingService.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListBookingsByDate implements BookingHandler.
func (h *bookingHandlerImpl) ListBookingsByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingService.ListBookingsByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CancelBooking implements BookingHandler.
func (h *bookingHandlerImpl) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingService.CancelBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking cancelled", nil)
}
