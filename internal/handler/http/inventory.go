package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/inventory"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/middleware"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	SubmitStock(w http.ResponseWriter, r *http.Request)
	GetSubmission(w http.ResponseWriter, r *http.Request)
	ListSubmissions(w http.ResponseWriter, r *http.Request)
	LowStockReport(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{inventoryService: inventoryService}
}

// ListProducts implements InventoryHandler.
func (h *inventoryHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListProducts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitStock implements InventoryHandler.
func (h *inventoryHandlerImpl) SubmitStock(w http.ResponseWriter, r *http.Request) {
	var req inventory.SubmitStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = middleware.StaffID(r)

	result, err := h.inventoryService.SubmitStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock submission recorded", result)
}

// GetSubmission implements InventoryHandler.
func (h *inventoryHandlerImpl) GetSubmission(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSubmissions implements InventoryHandler.
func (h *inventoryHandlerImpl) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	result, err := h.inventoryService.ListSubmissions(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LowStockReport implements InventoryHandler.
func (h *inventoryHandlerImpl) LowStockReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.LowStockReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
