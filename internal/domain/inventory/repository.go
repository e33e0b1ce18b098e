package inventory

import (
	"context"
	"time"
)

// InventoryRepository defines data access methods for products and stock
// submissions.
type InventoryRepository interface {
	ListActiveProducts(ctx context.Context) ([]Product, error)

	CreateSubmission(ctx context.Context, submission StockSubmission) (StockSubmission, error)
	GetSubmissionByID(ctx context.Context, id string) (StockSubmission, error)
	ListSubmissions(ctx context.Context, from, to time.Time) ([]StockSubmission, error)

	// ListLowStock returns products whose latest counted quantity is at or
	// below the reorder threshold.
	ListLowStock(ctx context.Context) ([]LowStockItem, error)
}
