package pos

import "context"

// OrderRepository defines data access methods for POS orders and items.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order Order) (Order, error)
	GetOrderByID(ctx context.Context, id string) (Order, error)
	UpdateOrderItem(ctx context.Context, orderID string, item OrderItem) error
	UpdateOrderTotals(ctx context.Context, order Order) error
	MarkOrderPaid(ctx context.Context, orderID string) error
}

// SplitRepository defines data access methods for bill splits and payments.
type SplitRepository interface {
	CreateSplit(ctx context.Context, split BillSplit) (BillSplit, error)
	GetSplitByID(ctx context.Context, id string) (BillSplit, error)

	// ReplaceLines rewrites a split's lines and stage in one transaction.
	ReplaceLines(ctx context.Context, split BillSplit) error

	UpdateStage(ctx context.Context, splitID string, stage SplitStage) error
	SetLinePaymentMethods(ctx context.Context, splitID string, methods map[string]PaymentMethod) error

	CreatePayments(ctx context.Context, payments []Payment) error
}
