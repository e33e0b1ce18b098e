package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	CreateSupplier(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	ListGenerated(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

// CreateSupplier implements InvoiceHandler.
func (h *invoiceHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.invoiceService.CreateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supplier created", result)
}

// ListSuppliers implements InvoiceHandler.
func (h *invoiceHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.ListSuppliers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSettings implements InvoiceHandler.
func (h *invoiceHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements InvoiceHandler.
func (h *invoiceHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req invoice.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.invoiceService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements InvoiceHandler.
func (h *invoiceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req invoice.GenerateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.invoiceService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice generated", result)
}

// ListGenerated implements InvoiceHandler.
func (h *invoiceHandlerImpl) ListGenerated(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	result, err := h.invoiceService.ListGenerated(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPDF implements InvoiceHandler.
func (h *invoiceHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "fileName")

	reader, err := h.invoiceService.OpenPDF(r.Context(), fileName)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, reader)
}
