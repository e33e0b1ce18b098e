package inventory

import "context"

// InventoryService defines business logic for the inventory submission
// forms.
type InventoryService interface {
	ListProducts(ctx context.Context) ([]ProductResponse, error)
	SubmitStock(ctx context.Context, req SubmitStockRequest) (SubmissionResponse, error)
	GetSubmission(ctx context.Context, id string) (SubmissionResponse, error)
	ListSubmissions(ctx context.Context, from, to string) ([]SubmissionResponse, error)
	LowStockReport(ctx context.Context) ([]LowStockResponse, error)
}
