package pos

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== ORDER DTOs ==========

type CreateOrderItemRequest struct {
	ProductID string                  `json:"product_id"`
	Name      string                  `json:"name"`
	Quantity  int                     `json:"quantity"`
	UnitPrice decimal.Decimal         `json:"unit_price"`
	Modifiers []CreateModifierRequest `json:"modifiers,omitempty"`
}

type CreateModifierRequest struct {
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

type CreateOrderRequest struct {
	StaffID string                   `json:"-"` // staff id from the auth token
	Items   []CreateOrderItemRequest `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one item is required"})
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			errs = append(errs, validator.ValidationError{Field: "items.quantity", Message: "must be at least 1"})
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items.unit_price", Message: "must be non-negative"})
		}
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{Field: "items.name", Message: "is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderItemRequest struct {
	OrderID   string                   `json:"-"`
	ItemID    string                   `json:"-"`
	Quantity  *int                     `json:"quantity,omitempty"`
	Modifiers *[]CreateModifierRequest `json:"modifiers,omitempty"`
}

func (r *UpdateOrderItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Quantity == nil && r.Modifiers == nil {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "at least one of quantity or modifiers is required"})
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ModifierResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

type OrderItemResponse struct {
	ID         string             `json:"id"`
	ProductID  string             `json:"product_id"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity"`
	UnitPrice  decimal.Decimal    `json:"unit_price"`
	Modifiers  []ModifierResponse `json:"modifiers,omitempty"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	IsPaid      bool                `json:"is_paid"`
	Items       []OrderItemResponse `json:"items"`
}

// ========== SPLIT DTOs ==========

type StartSplitRequest struct {
	OrderID string `json:"-"`
	Type    string `json:"type"`
}

func (r *StartSplitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(SplitEven), string(SplitByItem), string(SplitByAmount)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'even', 'by_item' or 'by_amount'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ConfigureSplitRequest carries the per-type configuration payload. Exactly
// one of the three sections applies, matching the split's type.
type ConfigureSplitRequest struct {
	SplitID string `json:"-"`

	// even
	NumPeople *int `json:"num_people,omitempty"`

	// by_item: one entry per person with their assigned item ids
	ItemAssignments []ItemAssignmentRequest `json:"item_assignments,omitempty"`

	// by_amount: one entry per person with a free amount
	Amounts []AmountEntryRequest `json:"amounts,omitempty"`
}

type ItemAssignmentRequest struct {
	CustomerInfo string   `json:"customer_info"`
	ItemIDs      []string `json:"item_ids"`
}

type AmountEntryRequest struct {
	CustomerInfo string          `json:"customer_info"`
	Amount       decimal.Decimal `json:"amount"`
}

type AllocatePaymentsRequest struct {
	SplitID string                 `json:"-"`
	Methods []LinePaymentMethodReq `json:"methods"`
}

type LinePaymentMethodReq struct {
	LineID        string `json:"line_id"`
	PaymentMethod string `json:"payment_method"`
}

func (r *AllocatePaymentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Methods) == 0 {
		errs = append(errs, validator.ValidationError{Field: "methods", Message: "is required"})
	}
	valid := []string{string(MethodCash), string(MethodCard), string(MethodPromptPay), string(MethodOther)}
	for _, m := range r.Methods {
		if !validator.IsInSlice(m.PaymentMethod, valid) {
			errs = append(errs, validator.ValidationError{Field: "methods.payment_method", Message: "must be 'cash', 'card', 'promptpay' or 'other'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SplitLineResponse struct {
	ID            string          `json:"id"`
	CustomerInfo  string          `json:"customer_info"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	ItemIDs       []string        `json:"item_ids,omitempty"`
}

type BillSplitResponse struct {
	ID      string              `json:"id"`
	OrderID string              `json:"order_id"`
	Type    string              `json:"type"`
	Stage   string              `json:"stage"`
	Lines   []SplitLineResponse `json:"lines"`
}

// ========== PAYMENT DTOs ==========

type ProcessPaymentRequest struct {
	SplitID     string `json:"split_id"`
	ProcessedBy string `json:"-"` // staff id from the auth token
}

func (r *ProcessPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SplitID) {
		errs = append(errs, validator.ValidationError{Field: "split_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MethodTotalResponse struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

type ProcessPaymentResponse struct {
	OrderID      string                `json:"order_id"`
	SplitID      string                `json:"split_id"`
	MethodTotals []MethodTotalResponse `json:"method_totals"`
}
