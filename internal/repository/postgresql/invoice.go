package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

// CreateSupplier implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CreateSupplier(ctx context.Context, s invoice.Supplier) (invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_suppliers (
			id, name, address_line1, address_line2, tax_id,
			default_description, default_unit_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.AddressLine1, s.AddressLine2, s.TaxID,
		s.DefaultDescription, s.DefaultUnitPrice,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return invoice.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}

	return s, nil
}

// GetSupplierByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetSupplierByID(ctx context.Context, id string) (invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_line1, address_line2, tax_id,
		       default_description, default_unit_price, created_at, updated_at
		FROM invoice_suppliers
		WHERE id = $1
	`

	var s invoice.Supplier
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.AddressLine1,
		&s.AddressLine2,
		&s.TaxID,
		&s.DefaultDescription,
		&s.DefaultUnitPrice,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Supplier{}, invoice.ErrSupplierNotFound
		}
		return invoice.Supplier{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	return s, nil
}

// ListSuppliers implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListSuppliers(ctx context.Context) ([]invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_line1, address_line2, tax_id,
		       default_description, default_unit_price, created_at, updated_at
		FROM invoice_suppliers
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []invoice.Supplier
	for rows.Next() {
		var s invoice.Supplier
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.AddressLine1,
			&s.AddressLine2,
			&s.TaxID,
			&s.DefaultDescription,
			&s.DefaultUnitPrice,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	return suppliers, rows.Err()
}

// GetSettings implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetSettings(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT key, value FROM invoice_settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// UpsertSettings implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpsertSettings(ctx context.Context, settings map[string]string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	for key, value := range settings {
		if _, err := q.Exec(ctx, query, key, value); err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}

	return nil
}
