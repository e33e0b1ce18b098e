package pos

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/shopspring/decimal"
)

const (
	minSplitPeople = 2
	maxSplitPeople = 10

	// by-amount configurations may drift from the order total by at most
	// one satang before they are rejected.
	amountTolerance = "0.01"
)

// evenSplit divides the total into numPeople lines. Each share is floored to
// two decimals and the rounding remainder lands on the first line, so the
// lines always sum back to the exact total.
func evenSplit(total decimal.Decimal, numPeople int) ([]pos.SplitLine, error) {
	if numPeople < minSplitPeople || numPeople > maxSplitPeople {
		return nil, pos.ErrInvalidPeopleCount
	}

	n := decimal.NewFromInt(int64(numPeople))
	share := total.Div(n).RoundDown(2)
	remainder := total.Sub(share.Mul(n))

	lines := make([]pos.SplitLine, numPeople)
	for i := range lines {
		amount := share
		if i == 0 {
			amount = amount.Add(remainder)
		}
		lines[i] = pos.SplitLine{
			ID:           uuid.New().String(),
			CustomerInfo: personLabel(i + 1),
			Amount:       amount,
		}
	}
	return lines, nil
}

// itemSplit builds one line per person from their assigned items. Every order
// item must be assigned to exactly one person; anything unassigned, duplicated
// or unknown fails with an ItemAssignmentError naming the offending ids.
func itemSplit(order pos.Order, assignments []pos.ItemAssignmentRequest) ([]pos.SplitLine, error) {
	itemTotals := make(map[string]decimal.Decimal, len(order.Items))
	for _, item := range order.Items {
		itemTotals[item.ID] = item.TotalPrice
	}

	seen := make(map[string]bool, len(order.Items))
	var duplicates, unknown []string
	lines := make([]pos.SplitLine, 0, len(assignments))

	for _, a := range assignments {
		amount := decimal.Zero
		itemIDs := make([]string, 0, len(a.ItemIDs))
		for _, id := range a.ItemIDs {
			total, ok := itemTotals[id]
			if !ok {
				unknown = append(unknown, id)
				continue
			}
			if seen[id] {
				duplicates = append(duplicates, id)
				continue
			}
			seen[id] = true
			amount = amount.Add(total)
			itemIDs = append(itemIDs, id)
		}
		lines = append(lines, pos.SplitLine{
			ID:           uuid.New().String(),
			CustomerInfo: a.CustomerInfo,
			Amount:       amount,
			ItemIDs:      itemIDs,
		})
	}

	var unassigned []string
	for _, item := range order.Items {
		if !seen[item.ID] {
			unassigned = append(unassigned, item.ID)
		}
	}
	if len(unassigned) > 0 || len(duplicates) > 0 || len(unknown) > 0 {
		sort.Strings(unassigned)
		sort.Strings(duplicates)
		sort.Strings(unknown)
		return nil, &pos.ItemAssignmentError{
			UnassignedIDs: unassigned,
			DuplicateIDs:  duplicates,
			UnknownIDs:    unknown,
		}
	}
	return lines, nil
}

// amountSplit accepts free-form per-person amounts as long as they sum to the
// order total within tolerance.
func amountSplit(total decimal.Decimal, amounts []pos.AmountEntryRequest) ([]pos.SplitLine, error) {
	sum := decimal.Zero
	lines := make([]pos.SplitLine, 0, len(amounts))
	for _, a := range amounts {
		sum = sum.Add(a.Amount)
		lines = append(lines, pos.SplitLine{
			ID:           uuid.New().String(),
			CustomerInfo: a.CustomerInfo,
			Amount:       a.Amount,
		})
	}

	delta := sum.Sub(total)
	if delta.Abs().GreaterThan(decimal.RequireFromString(amountTolerance)) {
		return nil, &pos.AmountMismatchError{Delta: delta}
	}
	return lines, nil
}

func personLabel(n int) string {
	return "Person " + strconv.Itoa(n)
}
