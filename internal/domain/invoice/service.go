package invoice

import (
	"context"
	"io"
)

// InvoiceService defines business logic for supplier invoices.
type InvoiceService interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	ListSuppliers(ctx context.Context) ([]SupplierResponse, error)

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// Generate computes totals, renders the PDF and stores it.
	Generate(ctx context.Context, req GenerateInvoiceRequest) (InvoiceResponse, error)

	// ListGenerated returns the most recently generated invoice files.
	ListGenerated(ctx context.Context, limit int) ([]string, error)

	// OpenPDF streams a previously generated invoice file.
	OpenPDF(ctx context.Context, fileName string) (io.ReadCloser, error)
}
