package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/inventory"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
)

type inventoryRepositoryImpl struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) inventory.InventoryRepository {
	return &inventoryRepositoryImpl{db: db}
}

// ListActiveProducts implements inventory.InventoryRepository.
func (r *inventoryRepositoryImpl) ListActiveProducts(ctx context.Context) ([]inventory.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, unit, reorder_threshold, is_active, display_rank
		FROM inventory_products
		WHERE is_active
		ORDER BY display_rank, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []inventory.Product
	for rows.Next() {
		var p inventory.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Unit,
			&p.ReorderThreshold,
			&p.IsActive,
			&p.DisplayRank,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateSubmission implements inventory.InventoryRepository.
func (r *inventoryRepositoryImpl) CreateSubmission(ctx context.Context, submission inventory.StockSubmission) (inventory.StockSubmission, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		headQuery := `
			INSERT INTO stock_submissions (id, staff_id, submission_date)
			VALUES ($1, $2, $3)
			RETURNING created_at
		`
		if err := tx.QueryRow(ctx, headQuery,
			submission.ID, submission.StaffID, submission.Date,
		).Scan(&submission.CreatedAt); err != nil {
			return fmt.Errorf("failed to create stock submission: %w", err)
		}

		lineQuery := `
			INSERT INTO stock_submission_lines (submission_id, product_id, quantity, note, position)
			VALUES ($1, $2, $3, $4, $5)
		`
		for i, line := range submission.Lines {
			if _, err := tx.Exec(ctx, lineQuery,
				submission.ID, line.ProductID, line.Quantity, line.Note, i,
			); err != nil {
				return fmt.Errorf("failed to create submission line: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return inventory.StockSubmission{}, err
	}

	return submission, nil
}

// GetSubmissionByID implements inventory.InventoryRepository.
func (r *inventoryRepositoryImpl) GetSubmissionByID(ctx context.Context, id string) (inventory.StockSubmission, error) {
	q := GetQuerier(ctx, r.db)

	headQuery := `
		SELECT sub.id, sub.staff_id, sub.submission_date, sub.created_at, s.name
		FROM stock_submissions sub
		JOIN staff s ON s.id = sub.staff_id
		WHERE sub.id = $1
	`

	var submission inventory.StockSubmission
	err := q.QueryRow(ctx, headQuery, id).Scan(
		&submission.ID,
		&submission.StaffID,
		&submission.Date,
		&submission.CreatedAt,
		&submission.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.StockSubmission{}, inventory.ErrSubmissionNotFound
		}
		return inventory.StockSubmission{}, fmt.Errorf("failed to get stock submission: %w", err)
	}

	lineQuery := `
		SELECT l.product_id, p.name, l.quantity, l.note
		FROM stock_submission_lines l
		JOIN inventory_products p ON p.id = l.product_id
		WHERE l.submission_id = $1
		ORDER BY l.position
	`
	rows, err := q.Query(ctx, lineQuery, id)
	if err != nil {
		return inventory.StockSubmission{}, fmt.Errorf("failed to list submission lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line inventory.SubmissionLine
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &line.Note); err != nil {
			return inventory.StockSubmission{}, fmt.Errorf("failed to scan submission line: %w", err)
		}
		submission.Lines = append(submission.Lines, line)
	}

	return submission, rows.Err()
}

// ListSubmissions implements inventory.InventoryRepository.
func (r *inventoryRepositoryImpl) ListSubmissions(ctx context.Context, from, to time.Time) ([]inventory.StockSubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sub.id
		FROM stock_submissions sub
		WHERE sub.submission_date >= $1 AND sub.submission_date < $2
		ORDER BY sub.submission_date DESC, sub.created_at DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock submissions: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan submission id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	submissions := make([]inventory.StockSubmission, 0, len(ids))
	for _, id := range ids {
		submission, err := r.GetSubmissionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// ListLowStock implements inventory.InventoryRepository.
func (r *inventoryRepositoryImpl) ListLowStock(ctx context.Context) ([]inventory.LowStockItem, error) {
	q := GetQuerier(ctx, r.db)

	// most recent count per product, compared against its threshold
	query := `
		SELECT p.id, p.name, p.unit, latest.quantity, p.reorder_threshold, latest.submission_date
		FROM inventory_products p
		JOIN LATERAL (
			SELECT l.quantity, sub.submission_date
			FROM stock_submission_lines l
			JOIN stock_submissions sub ON sub.id = l.submission_id
			WHERE l.product_id = p.id
			ORDER BY sub.submission_date DESC, sub.created_at DESC
			LIMIT 1
		) latest ON TRUE
		WHERE p.is_active AND latest.quantity <= p.reorder_threshold
		ORDER BY p.display_rank, p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	defer rows.Close()

	var items []inventory.LowStockItem
	for rows.Next() {
		var item inventory.LowStockItem
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Unit,
			&item.LastQuantity,
			&item.Threshold,
			&item.CountedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan low stock item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
