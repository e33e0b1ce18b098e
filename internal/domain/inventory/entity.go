package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product - a stocked item counted on the weekly inventory form.
type Product struct {
	ID               string
	Name             string
	Category         string
	Unit             string // "bottle", "box", "piece", ...
	ReorderThreshold decimal.Decimal
	IsActive         bool
	DisplayRank      int
}

// SubmissionLine - one counted product on a submission.
type SubmissionLine struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Note        *string
}

// StockSubmission - one staff member's completed inventory form.
type StockSubmission struct {
	ID        string
	StaffID   string
	Date      time.Time
	Lines     []SubmissionLine
	CreatedAt time.Time

	// Joined fields
	StaffName *string
}

// LowStockItem - a product whose last counted quantity is at or below its
// reorder threshold.
type LowStockItem struct {
	ProductID    string
	ProductName  string
	Unit         string
	LastQuantity decimal.Decimal
	Threshold    decimal.Decimal
	CountedAt    time.Time
}
