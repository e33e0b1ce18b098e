package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/middleware"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type POSHandler interface {
	// Orders
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrderItem(w http.ResponseWriter, r *http.Request)

	// Bill splits
	StartSplit(w http.ResponseWriter, r *http.Request)
	ConfigureSplit(w http.ResponseWriter, r *http.Request)
	AllocatePayments(w http.ResponseWriter, r *http.Request)
	CancelSplit(w http.ResponseWriter, r *http.Request)

	// Payment
	ProcessPayment(w http.ResponseWriter, r *http.Request)
}

type posHandlerImpl struct {
	posService pos.POSService
}

func NewPOSHandler(posService pos.POSService) POSHandler {
	return &posHandlerImpl{posService: posService}
}

// ========== ORDERS ==========

func (h *posHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req pos.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = middleware.StaffID(r)

	result, err := h.posService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", result)
}

func (h *posHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.posService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *posHandlerImpl) UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req pos.UpdateOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrderID = chi.URLParam(r, "id")
	req.ItemID = chi.URLParam(r, "itemId")

	result, err := h.posService.UpdateOrderItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== BILL SPLITS ==========

func (h *posHandlerImpl) StartSplit(w http.ResponseWriter, r *http.Request) {
	var req pos.StartSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrderID = chi.URLParam(r, "id")

	result, err := h.posService.StartSplit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill split started", result)
}

func (h *posHandlerImpl) ConfigureSplit(w http.ResponseWriter, r *http.Request) {
	var req pos.ConfigureSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SplitID = chi.URLParam(r, "id")

	result, err := h.posService.ConfigureSplit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *posHandlerImpl) AllocatePayments(w http.ResponseWriter, r *http.Request) {
	var req pos.AllocatePaymentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SplitID = chi.URLParam(r, "id")

	result, err := h.posService.AllocatePayments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *posHandlerImpl) CancelSplit(w http.ResponseWriter, r *http.Request) {
	if err := h.posService.CancelSplit(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill split cancelled", nil)
}

// ========== PAYMENT ==========

func (h *posHandlerImpl) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req pos.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProcessedBy = middleware.StaffID(r)

	result, err := h.posService.ProcessPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
