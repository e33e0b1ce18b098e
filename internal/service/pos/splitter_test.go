package pos

import (
	"errors"
	"testing"

	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumLines(lines []pos.SplitLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

func TestEvenSplit_RemainderOnFirstLine(t *testing.T) {
	total := decimal.NewFromInt(1000)

	lines, err := evenSplit(total, 3)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Amount.Equal(decimal.RequireFromString("333.34")), "got %s", lines[0].Amount)
	assert.True(t, lines[1].Amount.Equal(decimal.RequireFromString("333.33")))
	assert.True(t, lines[2].Amount.Equal(decimal.RequireFromString("333.33")))
	assert.True(t, sumLines(lines).Equal(total))

	assert.Equal(t, "Person 1", lines[0].CustomerInfo)
	assert.Equal(t, "Person 3", lines[2].CustomerInfo)
}

func TestEvenSplit_ExactDivision(t *testing.T) {
	lines, err := evenSplit(decimal.NewFromInt(900), 3)
	require.NoError(t, err)

	for _, l := range lines {
		assert.True(t, l.Amount.Equal(decimal.NewFromInt(300)))
	}
}

func TestEvenSplit_PeopleCountBounds(t *testing.T) {
	_, err := evenSplit(decimal.NewFromInt(100), 1)
	assert.ErrorIs(t, err, pos.ErrInvalidPeopleCount)

	_, err = evenSplit(decimal.NewFromInt(100), 11)
	assert.ErrorIs(t, err, pos.ErrInvalidPeopleCount)

	_, err = evenSplit(decimal.NewFromInt(100), 10)
	assert.NoError(t, err)
}

func splitTestOrder() pos.Order {
	return pos.Order{
		ID: "o1",
		Items: []pos.OrderItem{
			{ID: "i1", TotalPrice: decimal.NewFromInt(250)},
			{ID: "i2", TotalPrice: decimal.NewFromInt(150)},
			{ID: "i3", TotalPrice: decimal.NewFromInt(100)},
		},
		TotalAmount: decimal.NewFromInt(500),
	}
}

func TestItemSplit_ExactCover(t *testing.T) {
	order := splitTestOrder()
	assignments := []pos.ItemAssignmentRequest{
		{CustomerInfo: "Alice", ItemIDs: []string{"i1"}},
		{CustomerInfo: "Bob", ItemIDs: []string{"i2", "i3"}},
	}

	lines, err := itemSplit(order, assignments)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.True(t, lines[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.True(t, lines[1].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, []string{"i2", "i3"}, lines[1].ItemIDs)
	assert.True(t, sumLines(lines).Equal(order.TotalAmount))
}

func TestItemSplit_ReportsBadAssignments(t *testing.T) {
	order := splitTestOrder()
	assignments := []pos.ItemAssignmentRequest{
		{CustomerInfo: "Alice", ItemIDs: []string{"i1", "i9"}},
		{CustomerInfo: "Bob", ItemIDs: []string{"i1"}},
	}

	_, err := itemSplit(order, assignments)
	require.Error(t, err)

	var assignErr *pos.ItemAssignmentError
	require.True(t, errors.As(err, &assignErr))
	assert.Equal(t, []string{"i2", "i3"}, assignErr.UnassignedIDs)
	assert.Equal(t, []string{"i1"}, assignErr.DuplicateIDs)
	assert.Equal(t, []string{"i9"}, assignErr.UnknownIDs)
}

func TestAmountSplit_WithinTolerance(t *testing.T) {
	total := decimal.NewFromInt(500)
	amounts := []pos.AmountEntryRequest{
		{CustomerInfo: "Alice", Amount: decimal.RequireFromString("300.00")},
		{CustomerInfo: "Bob", Amount: decimal.RequireFromString("199.99")},
	}

	// One satang under the total is accepted.
	lines, err := amountSplit(total, amounts)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestAmountSplit_MismatchBeyondTolerance(t *testing.T) {
	total := decimal.NewFromInt(500)
	amounts := []pos.AmountEntryRequest{
		{CustomerInfo: "Alice", Amount: decimal.NewFromInt(300)},
		{CustomerInfo: "Bob", Amount: decimal.NewFromInt(150)},
	}

	_, err := amountSplit(total, amounts)
	require.Error(t, err)

	var mismatch *pos.AmountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Delta.Equal(decimal.NewFromInt(-50)), "got %s", mismatch.Delta)
}
