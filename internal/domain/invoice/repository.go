package invoice

import "context"

// InvoiceRepository defines data access methods for suppliers and the
// settings key-value store.
type InvoiceRepository interface {
	CreateSupplier(ctx context.Context, s Supplier) (Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (Supplier, error)
	ListSuppliers(ctx context.Context) ([]Supplier, error)

	GetSettings(ctx context.Context) (map[string]string, error)
	UpsertSettings(ctx context.Context, settings map[string]string) error
}
