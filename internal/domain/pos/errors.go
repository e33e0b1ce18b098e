package pos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyPaid   = errors.New("order is already paid")
	ErrOrderItemNotFound  = errors.New("order item not found")
	ErrSplitNotFound      = errors.New("bill split not found")
	ErrSplitTerminal      = errors.New("bill split is already committed or cancelled")
	ErrSplitNotAllocated  = errors.New("every split line needs a payment method before processing")
	ErrInvalidSplitType   = errors.New("split type must be even, by_item or by_amount")
	ErrInvalidPeopleCount = errors.New("even split supports 2 to 10 people")
)

// AmountMismatchError reports how far a by-amount configuration is from the
// order total. Negative delta means under-allocated, positive means over.
type AmountMismatchError struct {
	Delta decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	if e.Delta.IsNegative() {
		return fmt.Sprintf("split amounts fall short of the order total by %s", e.Delta.Neg())
	}
	return fmt.Sprintf("split amounts exceed the order total by %s", e.Delta)
}

// ItemAssignmentError reports order items left unassigned or assigned to
// more than one person in a by-item split.
type ItemAssignmentError struct {
	UnassignedIDs []string
	DuplicateIDs  []string
	UnknownIDs    []string
}

func (e *ItemAssignmentError) Error() string {
	var parts []string
	if len(e.UnassignedIDs) > 0 {
		parts = append(parts, fmt.Sprintf("unassigned items: %s", strings.Join(e.UnassignedIDs, ", ")))
	}
	if len(e.DuplicateIDs) > 0 {
		parts = append(parts, fmt.Sprintf("items assigned more than once: %s", strings.Join(e.DuplicateIDs, ", ")))
	}
	if len(e.UnknownIDs) > 0 {
		parts = append(parts, fmt.Sprintf("unknown item ids: %s", strings.Join(e.UnknownIDs, ", ")))
	}
	return strings.Join(parts, "; ")
}
