package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/storage"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const pdfPrefix = "invoices"

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type InvoiceServiceImpl struct {
	db          *database.DB
	invoiceRepo invoice.InvoiceRepository
	files       storage.FileStorage
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	files storage.FileStorage,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:          db,
		invoiceRepo: invoiceRepo,
		files:       files,
	}
}

// ========== SUPPLIERS ==========

func (s *InvoiceServiceImpl) CreateSupplier(ctx context.Context, req invoice.CreateSupplierRequest) (invoice.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.SupplierResponse{}, err
	}

	created, err := s.invoiceRepo.CreateSupplier(ctx, invoice.Supplier{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		AddressLine1:       req.AddressLine1,
		AddressLine2:       req.AddressLine2,
		TaxID:              req.TaxID,
		DefaultDescription: req.DefaultDescription,
		DefaultUnitPrice:   req.DefaultUnitPrice,
	})
	if err != nil {
		// Check for duplicate tax ID (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return invoice.SupplierResponse{}, invoice.ErrSupplierTaxIDExists
			}
		}
		return invoice.SupplierResponse{}, err
	}
	return mapToSupplierResponse(created), nil
}

func (s *InvoiceServiceImpl) ListSuppliers(ctx context.Context) ([]invoice.SupplierResponse, error) {
	suppliers, err := s.invoiceRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]invoice.SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		responses = append(responses, mapToSupplierResponse(supplier))
	}
	return responses, nil
}

// ========== SETTINGS ==========

func (s *InvoiceServiceImpl) GetSettings(ctx context.Context) (invoice.SettingsResponse, error) {
	settings, err := s.invoiceRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return invoice.SettingsResponse(settings), nil
}

func (s *InvoiceServiceImpl) UpdateSettings(ctx context.Context, req invoice.UpdateSettingsRequest) (invoice.SettingsResponse, error) {
	if rate, ok := req[invoice.SettingDefaultWHTRate]; ok {
		if !validator.IsNumeric(rate) {
			return nil, validator.ValidationErrors{
				{Field: invoice.SettingDefaultWHTRate, Message: "must be numeric"},
			}
		}
	}

	if err := s.invoiceRepo.UpsertSettings(ctx, map[string]string(req)); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx)
}

// ========== GENERATION ==========

func (s *InvoiceServiceImpl) Generate(ctx context.Context, req invoice.GenerateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	supplier, err := s.invoiceRepo.GetSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	settings, err := s.invoiceRepo.GetSettings(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	// Blank rows on the form are tolerated and skipped.
	items := make([]invoice.LineItem, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, item := range req.Items {
		if validator.IsEmpty(item.Description) || !item.Amount.IsPositive() {
			continue
		}
		items = append(items, invoice.LineItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
		subtotal = subtotal.Add(item.Amount)
	}
	if len(items) == 0 {
		return invoice.InvoiceResponse{}, invoice.ErrNoLineItems
	}

	date, _ := validator.IsValidDate(req.InvoiceDate)
	whtAmount := subtotal.Mul(req.WHTRate).Div(decimal.NewFromInt(100)).Round(2)

	inv := invoice.Invoice{
		Number:     req.InvoiceNumber,
		SupplierID: supplier.ID,
		Date:       date,
		Items:      items,
		WHTRate:    req.WHTRate,
		Subtotal:   subtotal,
		WHTAmount:  whtAmount,
		Total:      subtotal.Sub(whtAmount),
	}

	pdfBytes, err := renderPDF(inv, supplier, settings)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	fileName := invoiceFileName(supplier.Name, inv.Number)
	path := fmt.Sprintf("%s/%s", pdfPrefix, fileName)
	if _, err := s.files.Upload(ctx, bytes.NewReader(pdfBytes), path, "application/pdf"); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.InvoiceResponse{
		Number:    inv.Number,
		Supplier:  supplier.Name,
		Date:      req.InvoiceDate,
		Subtotal:  inv.Subtotal,
		WHTRate:   inv.WHTRate,
		WHTAmount: inv.WHTAmount,
		Total:     inv.Total,
		FileName:  fileName,
	}, nil
}

func (s *InvoiceServiceImpl) ListGenerated(ctx context.Context, limit int) ([]string, error) {
	names, err := s.files.List(ctx, pdfPrefix)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *InvoiceServiceImpl) OpenPDF(ctx context.Context, fileName string) (io.ReadCloser, error) {
	path := fmt.Sprintf("%s/%s", pdfPrefix, unsafeFileChars.ReplaceAllString(fileName, "_"))

	exists, err := s.files.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invoice.ErrInvoiceFileNotFound
	}
	return s.files.Download(ctx, path)
}

// invoiceFileName builds a filesystem-safe name from the supplier and
// invoice number.
func invoiceFileName(supplierName, number string) string {
	base := fmt.Sprintf("%s_%s", supplierName, number)
	base = unsafeFileChars.ReplaceAllString(strings.TrimSpace(base), "_")
	return base + ".pdf"
}

func mapToSupplierResponse(s invoice.Supplier) invoice.SupplierResponse {
	return invoice.SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		AddressLine1:       s.AddressLine1,
		AddressLine2:       s.AddressLine2,
		TaxID:              s.TaxID,
		DefaultDescription: s.DefaultDescription,
		DefaultUnitPrice:   s.DefaultUnitPrice,
	}
}
