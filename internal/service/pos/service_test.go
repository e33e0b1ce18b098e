package pos

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]pos.Order
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order pos.Order) (pos.Order, error) {
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (pos.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return pos.Order{}, pos.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) UpdateOrderItem(ctx context.Context, orderID string, item pos.OrderItem) error {
	return nil
}

func (f *fakeOrderRepo) UpdateOrderTotals(ctx context.Context, order pos.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) MarkOrderPaid(ctx context.Context, orderID string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return pos.ErrOrderNotFound
	}
	if order.IsPaid {
		return pos.ErrOrderAlreadyPaid
	}
	order.IsPaid = true
	f.orders[orderID] = order
	return nil
}

type fakeSplitRepo struct {
	splits   map[string]pos.BillSplit
	payments []pos.Payment
}

func (f *fakeSplitRepo) CreateSplit(ctx context.Context, split pos.BillSplit) (pos.BillSplit, error) {
	f.splits[split.ID] = split
	return split, nil
}

func (f *fakeSplitRepo) GetSplitByID(ctx context.Context, id string) (pos.BillSplit, error) {
	split, ok := f.splits[id]
	if !ok {
		return pos.BillSplit{}, pos.ErrSplitNotFound
	}
	return split, nil
}

func (f *fakeSplitRepo) ReplaceLines(ctx context.Context, split pos.BillSplit) error {
	f.splits[split.ID] = split
	return nil
}

func (f *fakeSplitRepo) UpdateStage(ctx context.Context, splitID string, stage pos.SplitStage) error {
	split, ok := f.splits[splitID]
	if !ok {
		return pos.ErrSplitNotFound
	}
	split.Stage = stage
	f.splits[splitID] = split
	return nil
}

func (f *fakeSplitRepo) SetLinePaymentMethods(ctx context.Context, splitID string, methods map[string]pos.PaymentMethod) error {
	split, ok := f.splits[splitID]
	if !ok {
		return pos.ErrSplitNotFound
	}
	for i := range split.Lines {
		if method, ok := methods[split.Lines[i].ID]; ok {
			m := method
			split.Lines[i].PaymentMethod = &m
		}
	}
	f.splits[splitID] = split
	return nil
}

func (f *fakeSplitRepo) CreatePayments(ctx context.Context, payments []pos.Payment) error {
	f.payments = append(f.payments, payments...)
	return nil
}

func newPOSTestService() (pos.POSService, *fakeOrderRepo, *fakeSplitRepo) {
	orderRepo := &fakeOrderRepo{orders: map[string]pos.Order{}}
	splitRepo := &fakeSplitRepo{splits: map[string]pos.BillSplit{}}
	return NewPOSService(nil, orderRepo, splitRepo), orderRepo, splitRepo
}

func TestCreateOrder_ComputesTotals(t *testing.T) {
	svc, _, _ := newPOSTestService()

	resp, err := svc.CreateOrder(context.Background(), pos.CreateOrderRequest{
		StaffID: "staff-1",
		Items: []pos.CreateOrderItemRequest{
			{
				Name:      "Singha",
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(120),
			},
			{
				Name:      "Fried rice",
				Quantity:  1,
				UnitPrice: decimal.NewFromInt(150),
				Modifiers: []pos.CreateModifierRequest{
					{Name: "Extra egg", PriceAdjustment: decimal.NewFromInt(20)},
				},
			},
		},
	})
	require.NoError(t, err)

	// 2 x 120 + (150 + 20)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(410)), "got %s", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[1].TotalPrice.Equal(decimal.NewFromInt(170)))
	assert.False(t, resp.IsPaid)
}

func TestStartSplit_RejectsPaidOrder(t *testing.T) {
	svc, orderRepo, _ := newPOSTestService()
	orderRepo.orders["o1"] = pos.Order{ID: "o1", IsPaid: true}

	_, err := svc.StartSplit(context.Background(), pos.StartSplitRequest{OrderID: "o1", Type: "even"})
	assert.ErrorIs(t, err, pos.ErrOrderAlreadyPaid)
}

func TestConfigureSplit_EvenLinesSumToTotal(t *testing.T) {
	svc, orderRepo, splitRepo := newPOSTestService()
	orderRepo.orders["o1"] = pos.Order{ID: "o1", TotalAmount: decimal.NewFromInt(1000)}
	splitRepo.splits["sp1"] = pos.BillSplit{
		ID:      "sp1",
		OrderID: "o1",
		Type:    pos.SplitEven,
		Stage:   pos.StageConfiguration,
	}

	three := 3
	resp, err := svc.ConfigureSplit(context.Background(), pos.ConfigureSplitRequest{
		SplitID:   "sp1",
		NumPeople: &three,
	})
	require.NoError(t, err)

	assert.Equal(t, string(pos.StageReview), resp.Stage)
	require.Len(t, resp.Lines, 3)
	sum := decimal.Zero
	for _, l := range resp.Lines {
		sum = sum.Add(l.Amount)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1000)))
}

func TestConfigureSplit_TerminalSplit(t *testing.T) {
	svc, _, splitRepo := newPOSTestService()
	splitRepo.splits["sp1"] = pos.BillSplit{ID: "sp1", OrderID: "o1", Type: pos.SplitEven, Stage: pos.StageCommitted}

	two := 2
	_, err := svc.ConfigureSplit(context.Background(), pos.ConfigureSplitRequest{SplitID: "sp1", NumPeople: &two})
	assert.ErrorIs(t, err, pos.ErrSplitTerminal)
}

func TestProcessPayment_RequiresAllocationStage(t *testing.T) {
	svc, _, splitRepo := newPOSTestService()
	splitRepo.splits["sp1"] = pos.BillSplit{
		ID:      "sp1",
		OrderID: "o1",
		Type:    pos.SplitEven,
		Stage:   pos.StageReview,
	}

	_, err := svc.ProcessPayment(context.Background(), pos.ProcessPaymentRequest{SplitID: "sp1"})
	assert.ErrorIs(t, err, pos.ErrSplitNotAllocated)
}

// ambientTx stands in for an open transaction on the context. The fakes
// ignore the querier, so no method ever gets called on it.
type ambientTx struct{ pgx.Tx }

func TestProcessPayment_CommitsSplitAndOrder(t *testing.T) {
	svc, orderRepo, splitRepo := newPOSTestService()
	orderRepo.orders["o1"] = pos.Order{ID: "o1", TotalAmount: decimal.NewFromInt(900)}
	splitRepo.splits["sp1"] = pos.BillSplit{
		ID:      "sp1",
		OrderID: "o1",
		Type:    pos.SplitEven,
		Stage:   pos.StageConfiguration,
	}

	ctx := context.WithValue(context.Background(), "tx", ambientTx{})

	three := 3
	conf, err := svc.ConfigureSplit(ctx, pos.ConfigureSplitRequest{SplitID: "sp1", NumPeople: &three})
	require.NoError(t, err)
	require.Len(t, conf.Lines, 3)

	_, err = svc.AllocatePayments(ctx, pos.AllocatePaymentsRequest{
		SplitID: "sp1",
		Methods: []pos.LinePaymentMethodReq{
			{LineID: conf.Lines[0].ID, PaymentMethod: string(pos.MethodCash)},
			{LineID: conf.Lines[1].ID, PaymentMethod: string(pos.MethodCash)},
			{LineID: conf.Lines[2].ID, PaymentMethod: string(pos.MethodCard)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, pos.StagePaymentAllocation, splitRepo.splits["sp1"].Stage)

	resp, err := svc.ProcessPayment(ctx, pos.ProcessPaymentRequest{SplitID: "sp1", ProcessedBy: "staff-1"})
	require.NoError(t, err)

	// Lines sharing a method collapse into one total, ordered by method name.
	require.Len(t, resp.MethodTotals, 2)
	assert.Equal(t, "card", resp.MethodTotals[0].Method)
	assert.True(t, resp.MethodTotals[0].Total.Equal(conf.Lines[2].Amount), "got %s", resp.MethodTotals[0].Total)
	assert.Equal(t, "cash", resp.MethodTotals[1].Method)
	cash := conf.Lines[0].Amount.Add(conf.Lines[1].Amount)
	assert.True(t, resp.MethodTotals[1].Total.Equal(cash), "got %s", resp.MethodTotals[1].Total)

	assert.Equal(t, pos.StageCommitted, splitRepo.splits["sp1"].Stage)
	assert.True(t, orderRepo.orders["o1"].IsPaid)
	require.Len(t, splitRepo.payments, 3)
	for _, p := range splitRepo.payments {
		assert.Equal(t, "o1", p.OrderID)
		assert.Equal(t, "staff-1", p.ProcessedBy)
	}
}

func TestCancelSplit(t *testing.T) {
	svc, _, splitRepo := newPOSTestService()
	splitRepo.splits["sp1"] = pos.BillSplit{ID: "sp1", OrderID: "o1", Type: pos.SplitEven, Stage: pos.StageReview}

	require.NoError(t, svc.CancelSplit(context.Background(), "sp1"))
	assert.Equal(t, pos.StageCancelled, splitRepo.splits["sp1"].Stage)

	// A cancelled split cannot be cancelled again.
	assert.ErrorIs(t, svc.CancelSplit(context.Background(), "sp1"), pos.ErrSplitTerminal)
}
