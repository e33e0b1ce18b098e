package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) pos.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// modifiers live as a jsonb column on order_items
type modifierJSON struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

func marshalModifiers(modifiers []pos.Modifier) ([]byte, error) {
	out := make([]modifierJSON, 0, len(modifiers))
	for _, m := range modifiers {
		out = append(out, modifierJSON(m))
	}
	return json.Marshal(out)
}

func unmarshalModifiers(raw []byte) ([]pos.Modifier, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var decoded []modifierJSON
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	modifiers := make([]pos.Modifier, 0, len(decoded))
	for _, m := range decoded {
		modifiers = append(modifiers, pos.Modifier(m))
	}
	return modifiers, nil
}

// CreateOrder implements pos.OrderRepository.
func (r *orderRepositoryImpl) CreateOrder(ctx context.Context, order pos.Order) (pos.Order, error) {
	q := GetQuerier(ctx, r.db)

	orderQuery := `
		INSERT INTO orders (id, staff_id, total_amount, is_paid)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, orderQuery, order.ID, order.StaffID, order.TotalAmount, order.IsPaid).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return pos.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, modifiers, total_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i, item := range order.Items {
		modifiers, err := marshalModifiers(item.Modifiers)
		if err != nil {
			return pos.Order{}, fmt.Errorf("failed to encode modifiers: %w", err)
		}
		if _, err := q.Exec(ctx, itemQuery,
			item.ID, order.ID, item.ProductID, item.Name,
			item.Quantity, item.UnitPrice, modifiers, item.TotalPrice, i,
		); err != nil {
			return pos.Order{}, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	return order, nil
}

// GetOrderByID implements pos.OrderRepository.
func (r *orderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (pos.Order, error) {
	q := GetQuerier(ctx, r.db)

	orderQuery := `
		SELECT id, staff_id, total_amount, is_paid, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order pos.Order
	err := q.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.StaffID,
		&order.TotalAmount,
		&order.IsPaid,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pos.Order{}, pos.ErrOrderNotFound
		}
		return pos.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	itemQuery := `
		SELECT id, product_id, name, quantity, unit_price, modifiers, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`
	rows, err := q.Query(ctx, itemQuery, id)
	if err != nil {
		return pos.Order{}, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item pos.OrderItem
		var modifiersRaw []byte
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&modifiersRaw,
			&item.TotalPrice,
		); err != nil {
			return pos.Order{}, fmt.Errorf("failed to scan order item: %w", err)
		}
		if item.Modifiers, err = unmarshalModifiers(modifiersRaw); err != nil {
			return pos.Order{}, fmt.Errorf("failed to decode modifiers: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return order, rows.Err()
}

// UpdateOrderItem implements pos.OrderRepository.
func (r *orderRepositoryImpl) UpdateOrderItem(ctx context.Context, orderID string, item pos.OrderItem) error {
	q := GetQuerier(ctx, r.db)

	modifiers, err := marshalModifiers(item.Modifiers)
	if err != nil {
		return fmt.Errorf("failed to encode modifiers: %w", err)
	}

	query := `
		UPDATE order_items
		SET quantity = $1, modifiers = $2, total_price = $3
		WHERE id = $4 AND order_id = $5
	`
	tag, err := q.Exec(ctx, query, item.Quantity, modifiers, item.TotalPrice, item.ID, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pos.ErrOrderItemNotFound
	}

	return nil
}

// UpdateOrderTotals implements pos.OrderRepository.
func (r *orderRepositoryImpl) UpdateOrderTotals(ctx context.Context, order pos.Order) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE orders SET total_amount = $1, updated_at = NOW() WHERE id = $2`,
		order.TotalAmount, order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pos.ErrOrderNotFound
	}

	return nil
}

// MarkOrderPaid implements pos.OrderRepository.
func (r *orderRepositoryImpl) MarkOrderPaid(ctx context.Context, orderID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE orders SET is_paid = TRUE, updated_at = NOW() WHERE id = $1 AND NOT is_paid`,
		orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pos.ErrOrderAlreadyPaid
	}

	return nil
}

type splitRepositoryImpl struct {
	db *database.DB
}

func NewSplitRepository(db *database.DB) pos.SplitRepository {
	return &splitRepositoryImpl{db: db}
}

// CreateSplit implements pos.SplitRepository.
func (r *splitRepositoryImpl) CreateSplit(ctx context.Context, split pos.BillSplit) (pos.BillSplit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bill_splits (id, order_id, split_type, stage)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, split.ID, split.OrderID, split.Type, split.Stage).
		Scan(&split.CreatedAt, &split.UpdatedAt)
	if err != nil {
		return pos.BillSplit{}, fmt.Errorf("failed to create bill split: %w", err)
	}

	return split, nil
}

// GetSplitByID implements pos.SplitRepository.
func (r *splitRepositoryImpl) GetSplitByID(ctx context.Context, id string) (pos.BillSplit, error) {
	q := GetQuerier(ctx, r.db)

	splitQuery := `
		SELECT id, order_id, split_type, stage, created_at, updated_at
		FROM bill_splits
		WHERE id = $1
	`

	var split pos.BillSplit
	err := q.QueryRow(ctx, splitQuery, id).Scan(
		&split.ID,
		&split.OrderID,
		&split.Type,
		&split.Stage,
		&split.CreatedAt,
		&split.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pos.BillSplit{}, pos.ErrSplitNotFound
		}
		return pos.BillSplit{}, fmt.Errorf("failed to get bill split: %w", err)
	}

	lineQuery := `
		SELECT id, customer_info, amount, payment_method, item_ids
		FROM split_lines
		WHERE split_id = $1
		ORDER BY position
	`
	rows, err := q.Query(ctx, lineQuery, id)
	if err != nil {
		return pos.BillSplit{}, fmt.Errorf("failed to list split lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line pos.SplitLine
		if err := rows.Scan(
			&line.ID,
			&line.CustomerInfo,
			&line.Amount,
			&line.PaymentMethod,
			&line.ItemIDs,
		); err != nil {
			return pos.BillSplit{}, fmt.Errorf("failed to scan split line: %w", err)
		}
		split.Lines = append(split.Lines, line)
	}

	return split, rows.Err()
}

// ReplaceLines implements pos.SplitRepository.
func (r *splitRepositoryImpl) ReplaceLines(ctx context.Context, split pos.BillSplit) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM split_lines WHERE split_id = $1`, split.ID); err != nil {
			return fmt.Errorf("failed to clear split lines: %w", err)
		}

		lineQuery := `
			INSERT INTO split_lines (id, split_id, customer_info, amount, payment_method, item_ids, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for i, line := range split.Lines {
			if _, err := tx.Exec(ctx, lineQuery,
				line.ID, split.ID, line.CustomerInfo, line.Amount,
				line.PaymentMethod, line.ItemIDs, i,
			); err != nil {
				return fmt.Errorf("failed to create split line: %w", err)
			}
		}

		tag, err := tx.Exec(ctx,
			`UPDATE bill_splits SET stage = $1, updated_at = NOW() WHERE id = $2`,
			split.Stage, split.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update split stage: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pos.ErrSplitNotFound
		}
		return nil
	})
}

// UpdateStage implements pos.SplitRepository.
func (r *splitRepositoryImpl) UpdateStage(ctx context.Context, splitID string, stage pos.SplitStage) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE bill_splits SET stage = $1, updated_at = NOW() WHERE id = $2`,
		stage, splitID,
	)
	if err != nil {
		return fmt.Errorf("failed to update split stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pos.ErrSplitNotFound
	}

	return nil
}

// SetLinePaymentMethods implements pos.SplitRepository.
func (r *splitRepositoryImpl) SetLinePaymentMethods(ctx context.Context, splitID string, methods map[string]pos.PaymentMethod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE split_lines
		SET payment_method = $1
		WHERE id = $2 AND split_id = $3
	`
	for lineID, method := range methods {
		tag, err := q.Exec(ctx, query, method, lineID, splitID)
		if err != nil {
			return fmt.Errorf("failed to set line payment method: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pos.ErrSplitNotFound
		}
	}

	return nil
}

// CreatePayments implements pos.SplitRepository.
func (r *splitRepositoryImpl) CreatePayments(ctx context.Context, payments []pos.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, order_id, split_line_id, amount, method, processed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, p := range payments {
		if _, err := q.Exec(ctx, query,
			p.ID, p.OrderID, p.SplitLineID, p.Amount, p.Method, p.ProcessedBy,
		); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
	}

	return nil
}
