package pos

import "context"

// POSService defines business logic for orders, bill splitting and payment
// processing.
type POSService interface {
	// Orders
	CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
	GetOrder(ctx context.Context, id string) (OrderResponse, error)
	UpdateOrderItem(ctx context.Context, req UpdateOrderItemRequest) (OrderResponse, error)

	// Bill split lifecycle
	StartSplit(ctx context.Context, req StartSplitRequest) (BillSplitResponse, error)
	ConfigureSplit(ctx context.Context, req ConfigureSplitRequest) (BillSplitResponse, error)
	AllocatePayments(ctx context.Context, req AllocatePaymentsRequest) (BillSplitResponse, error)
	CancelSplit(ctx context.Context, splitID string) error

	// ProcessPayment validates the allocated split, records one payment per
	// line and marks the order paid.
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (ProcessPaymentResponse, error)
}
