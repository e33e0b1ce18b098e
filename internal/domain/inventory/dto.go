package inventory

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitStockRequest struct {
	StaffID string                   `json:"-"`
	Date    string                   `json:"date"` // "YYYY-MM-DD"
	Lines   []SubmitStockLineRequest `json:"lines"`
}

type SubmitStockLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      *string         `json:"note,omitempty"`
}

func (r *SubmitStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Lines) == 0 {
		errs = append(errs, validator.ValidationError{Field: "lines", Message: "at least one line is required"})
	}
	for _, line := range r.Lines {
		if validator.IsEmpty(line.ProductID) {
			errs = append(errs, validator.ValidationError{Field: "lines.product_id", Message: "is required"})
		}
		if line.Quantity.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "lines.quantity", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmissionLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Note        *string         `json:"note,omitempty"`
}

type SubmissionResponse struct {
	ID        string                   `json:"id"`
	StaffID   string                   `json:"staff_id"`
	StaffName *string                  `json:"staff_name,omitempty"`
	Date      string                   `json:"date"`
	Lines     []SubmissionLineResponse `json:"lines"`
}

type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
}

type LowStockResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Unit         string          `json:"unit"`
	LastQuantity decimal.Decimal `json:"last_quantity"`
	Threshold    decimal.Decimal `json:"threshold"`
	CountedAt    string          `json:"counted_at"`
}
