package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enum
type PaymentMethod string

const (
	MethodCash      PaymentMethod = "cash"
	MethodCard      PaymentMethod = "card"
	MethodPromptPay PaymentMethod = "promptpay"
	MethodOther     PaymentMethod = "other"
)

// SplitType enum
type SplitType string

const (
	SplitEven     SplitType = "even"
	SplitByItem   SplitType = "by_item"
	SplitByAmount SplitType = "by_amount"
)

// SplitStage - the bill split walks type_selection → configuration → review
// → payment_allocation, terminating committed or cancelled.
type SplitStage string

const (
	StageConfiguration     SplitStage = "configuration"
	StageReview            SplitStage = "review"
	StagePaymentAllocation SplitStage = "payment_allocation"
	StageCommitted         SplitStage = "committed"
	StageCancelled         SplitStage = "cancelled"
)

// Modifier - a per-item price adjustment (extra shot, no ice, ...)
type Modifier struct {
	ID              string
	Name            string
	PriceAdjustment decimal.Decimal
}

// OrderItem - one line on an order. TotalPrice is derived and recomputed
// whenever quantity or modifiers change.
type OrderItem struct {
	ID         string
	ProductID  string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	Modifiers  []Modifier
	TotalPrice decimal.Decimal
}

// RecalculateTotal sets TotalPrice = unit price x quantity plus modifier
// adjustments, each applied per unit.
func (i *OrderItem) RecalculateTotal() {
	qty := decimal.NewFromInt(int64(i.Quantity))
	price := i.UnitPrice
	for _, m := range i.Modifiers {
		price = price.Add(m.PriceAdjustment)
	}
	i.TotalPrice = price.Mul(qty).Round(2)
}

// Order - a POS tab. TotalAmount is the sum of item totals.
type Order struct {
	ID          string
	StaffID     string
	TotalAmount decimal.Decimal
	IsPaid      bool
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecalculateTotal re-derives the order total from item totals.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}
	o.TotalAmount = total
}

// SplitLine - one person's share of the order, with its own payment method.
type SplitLine struct {
	ID            string
	CustomerInfo  string
	Amount        decimal.Decimal
	PaymentMethod *PaymentMethod
	ItemIDs       []string // by_item splits only
}

// BillSplit - a draft or committed partition of an order's total.
type BillSplit struct {
	ID        string
	OrderID   string
	Type      SplitType
	Stage     SplitStage
	Lines     []SplitLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payment - one recorded payment against a split line.
type Payment struct {
	ID          string
	OrderID     string
	SplitLineID string
	Amount      decimal.Decimal
	Method      PaymentMethod
	ProcessedBy string
	CreatedAt   time.Time
}
