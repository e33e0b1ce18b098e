package invoice

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSupplierRequest struct {
	Name               string           `json:"name"`
	AddressLine1       *string          `json:"address_line1,omitempty"`
	AddressLine2       *string          `json:"address_line2,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	DefaultDescription *string          `json:"default_description,omitempty"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price,omitempty"`
}

func (r *CreateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DefaultUnitPrice != nil && r.DefaultUnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_unit_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupplierResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	AddressLine1       *string          `json:"address_line1,omitempty"`
	AddressLine2       *string          `json:"address_line2,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	DefaultDescription *string          `json:"default_description,omitempty"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price,omitempty"`
}

type GenerateInvoiceRequest struct {
	SupplierID    string                   `json:"supplier_id"`
	InvoiceNumber string                   `json:"invoice_number"`
	InvoiceDate   string                   `json:"invoice_date"` // "YYYY-MM-DD"
	WHTRate       decimal.Decimal          `json:"wht_rate"`     // percent
	Items         []InvoiceLineItemRequest `json:"items"`
}

type InvoiceLineItemRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "is required"})
	}
	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.InvoiceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "invoice_date", Message: "must be YYYY-MM-DD"})
	}
	if r.WHTRate.IsNegative() || r.WHTRate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "wht_rate", Message: "must be between 0 and 100"})
	}
	valid := 0
	for _, item := range r.Items {
		if !validator.IsEmpty(item.Description) && item.Amount.IsPositive() {
			valid++
		}
	}
	if valid == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line with a description and positive amount is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceResponse struct {
	Number    string          `json:"number"`
	Supplier  string          `json:"supplier"`
	Date      string          `json:"date"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	WHTRate   decimal.Decimal `json:"wht_rate"`
	WHTAmount decimal.Decimal `json:"wht_amount"`
	Total     decimal.Decimal `json:"total"`
	FileName  string          `json:"file_name"`
}

type UpdateSettingsRequest map[string]string

type SettingsResponse map[string]string
