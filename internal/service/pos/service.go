package pos

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type POSServiceImpl struct {
	db        *database.DB
	orderRepo pos.OrderRepository
	splitRepo pos.SplitRepository
}

func NewPOSService(
	db *database.DB,
	orderRepo pos.OrderRepository,
	splitRepo pos.SplitRepository,
) pos.POSService {
	return &POSServiceImpl{
		db:        db,
		orderRepo: orderRepo,
		splitRepo: splitRepo,
	}
}

// ========== ORDERS ==========

func (s *POSServiceImpl) CreateOrder(ctx context.Context, req pos.CreateOrderRequest) (pos.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return pos.OrderResponse{}, err
	}

	order := pos.Order{
		ID:      uuid.New().String(),
		StaffID: req.StaffID,
		Items:   make([]pos.OrderItem, 0, len(req.Items)),
	}
	for _, ir := range req.Items {
		item := pos.OrderItem{
			ID:        uuid.New().String(),
			ProductID: ir.ProductID,
			Name:      ir.Name,
			Quantity:  ir.Quantity,
			UnitPrice: ir.UnitPrice,
		}
		for _, mr := range ir.Modifiers {
			item.Modifiers = append(item.Modifiers, pos.Modifier{
				ID:              uuid.New().String(),
				Name:            mr.Name,
				PriceAdjustment: mr.PriceAdjustment,
			})
		}
		item.RecalculateTotal()
		order.Items = append(order.Items, item)
	}
	order.RecalculateTotal()

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return pos.OrderResponse{}, err
	}
	return mapToOrderResponse(created), nil
}

func (s *POSServiceImpl) GetOrder(ctx context.Context, id string) (pos.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return pos.OrderResponse{}, err
	}
	return mapToOrderResponse(order), nil
}

func (s *POSServiceImpl) UpdateOrderItem(ctx context.Context, req pos.UpdateOrderItemRequest) (pos.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return pos.OrderResponse{}, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return pos.OrderResponse{}, err
	}
	if order.IsPaid {
		return pos.OrderResponse{}, pos.ErrOrderAlreadyPaid
	}

	idx := -1
	for i, item := range order.Items {
		if item.ID == req.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return pos.OrderResponse{}, pos.ErrOrderItemNotFound
	}

	item := &order.Items[idx]
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Modifiers != nil {
		item.Modifiers = item.Modifiers[:0]
		for _, mr := range *req.Modifiers {
			item.Modifiers = append(item.Modifiers, pos.Modifier{
				ID:              uuid.New().String(),
				Name:            mr.Name,
				PriceAdjustment: mr.PriceAdjustment,
			})
		}
	}
	item.RecalculateTotal()
	order.RecalculateTotal()

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.orderRepo.UpdateOrderItem(txCtx, order.ID, *item); err != nil {
			return err
		}
		return s.orderRepo.UpdateOrderTotals(txCtx, order)
	})
	if err != nil {
		return pos.OrderResponse{}, err
	}
	return mapToOrderResponse(order), nil
}

// ========== BILL SPLITS ==========

func (s *POSServiceImpl) StartSplit(ctx context.Context, req pos.StartSplitRequest) (pos.BillSplitResponse, error) {
	if err := req.Validate(); err != nil {
		return pos.BillSplitResponse{}, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return pos.BillSplitResponse{}, err
	}
	if order.IsPaid {
		return pos.BillSplitResponse{}, pos.ErrOrderAlreadyPaid
	}

	split, err := s.splitRepo.CreateSplit(ctx, pos.BillSplit{
		ID:      uuid.New().String(),
		OrderID: order.ID,
		Type:    pos.SplitType(req.Type),
		Stage:   pos.StageConfiguration,
	})
	if err != nil {
		return pos.BillSplitResponse{}, err
	}
	return mapToSplitResponse(split), nil
}

func (s *POSServiceImpl) ConfigureSplit(ctx context.Context, req pos.ConfigureSplitRequest) (pos.BillSplitResponse, error) {
	split, err := s.splitRepo.GetSplitByID(ctx, req.SplitID)
	if err != nil {
		return pos.BillSplitResponse{}, err
	}
	if split.Stage == pos.StageCommitted || split.Stage == pos.StageCancelled {
		return pos.BillSplitResponse{}, pos.ErrSplitTerminal
	}

	order, err := s.orderRepo.GetOrderByID(ctx, split.OrderID)
	if err != nil {
		return pos.BillSplitResponse{}, err
	}

	var lines []pos.SplitLine
	switch split.Type {
	case pos.SplitEven:
		if req.NumPeople == nil {
			return pos.BillSplitResponse{}, pos.ErrInvalidPeopleCount
		}
		lines, err = evenSplit(order.TotalAmount, *req.NumPeople)
	case pos.SplitByItem:
		lines, err = itemSplit(order, req.ItemAssignments)
	case pos.SplitByAmount:
		lines, err = amountSplit(order.TotalAmount, req.Amounts)
	default:
		err = pos.ErrInvalidSplitType
	}
	if err != nil {
		return pos.BillSplitResponse{}, err
	}

	// Reconfiguring replaces any earlier draft lines and resets payment
	// method choices along with them.
	split.Lines = lines
	split.Stage = pos.StageReview
	if err := s.splitRepo.ReplaceLines(ctx, split); err != nil {
		return pos.BillSplitResponse{}, err
	}
	return mapToSplitResponse(split), nil
}

func (s *POSServiceImpl) AllocatePayments(ctx context.Context, req pos.AllocatePaymentsRequest) (pos.BillSplitResponse, error) {
	if err := req.Validate(); err != nil {
		return pos.BillSplitResponse{}, err
	}

	split, err := s.splitRepo.GetSplitByID(ctx, req.SplitID)
	if err != nil {
		return pos.BillSplitResponse{}, err
	}
	if split.Stage == pos.StageCommitted || split.Stage == pos.StageCancelled {
		return pos.BillSplitResponse{}, pos.ErrSplitTerminal
	}

	lineByID := make(map[string]*pos.SplitLine, len(split.Lines))
	for i := range split.Lines {
		lineByID[split.Lines[i].ID] = &split.Lines[i]
	}

	methods := make(map[string]pos.PaymentMethod, len(req.Methods))
	for _, m := range req.Methods {
		line, ok := lineByID[m.LineID]
		if !ok {
			return pos.BillSplitResponse{}, pos.ErrSplitNotFound
		}
		method := pos.PaymentMethod(m.PaymentMethod)
		line.PaymentMethod = &method
		methods[m.LineID] = method
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.splitRepo.SetLinePaymentMethods(txCtx, split.ID, methods); err != nil {
			return err
		}
		return s.splitRepo.UpdateStage(txCtx, split.ID, pos.StagePaymentAllocation)
	})
	if err != nil {
		return pos.BillSplitResponse{}, err
	}

	split.Stage = pos.StagePaymentAllocation
	return mapToSplitResponse(split), nil
}

func (s *POSServiceImpl) CancelSplit(ctx context.Context, splitID string) error {
	split, err := s.splitRepo.GetSplitByID(ctx, splitID)
	if err != nil {
		return err
	}
	if split.Stage == pos.StageCommitted || split.Stage == pos.StageCancelled {
		return pos.ErrSplitTerminal
	}
	return s.splitRepo.UpdateStage(ctx, splitID, pos.StageCancelled)
}

// ========== PAYMENT PROCESSING ==========

func (s *POSServiceImpl) ProcessPayment(ctx context.Context, req pos.ProcessPaymentRequest) (pos.ProcessPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return pos.ProcessPaymentResponse{}, err
	}

	split, err := s.splitRepo.GetSplitByID(ctx, req.SplitID)
	if err != nil {
		return pos.ProcessPaymentResponse{}, err
	}
	if split.Stage == pos.StageCommitted || split.Stage == pos.StageCancelled {
		return pos.ProcessPaymentResponse{}, pos.ErrSplitTerminal
	}
	if split.Stage != pos.StagePaymentAllocation {
		return pos.ProcessPaymentResponse{}, pos.ErrSplitNotAllocated
	}
	for _, line := range split.Lines {
		if line.PaymentMethod == nil {
			return pos.ProcessPaymentResponse{}, pos.ErrSplitNotAllocated
		}
	}

	order, err := s.orderRepo.GetOrderByID(ctx, split.OrderID)
	if err != nil {
		return pos.ProcessPaymentResponse{}, err
	}
	if order.IsPaid {
		return pos.ProcessPaymentResponse{}, pos.ErrOrderAlreadyPaid
	}

	now := time.Now()
	payments := make([]pos.Payment, 0, len(split.Lines))
	for _, line := range split.Lines {
		payments = append(payments, pos.Payment{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			SplitLineID: line.ID,
			Amount:      line.Amount,
			Method:      *line.PaymentMethod,
			ProcessedBy: req.ProcessedBy,
			CreatedAt:   now,
		})
	}

	// Payments, the terminal stage and the paid flag land together or not
	// at all.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.splitRepo.CreatePayments(txCtx, payments); err != nil {
			return err
		}
		if err := s.splitRepo.UpdateStage(txCtx, split.ID, pos.StageCommitted); err != nil {
			return err
		}
		return s.orderRepo.MarkOrderPaid(txCtx, order.ID)
	})
	if err != nil {
		return pos.ProcessPaymentResponse{}, err
	}

	return pos.ProcessPaymentResponse{
		OrderID:      order.ID,
		SplitID:      split.ID,
		MethodTotals: methodTotals(payments),
	}, nil
}

// methodTotals folds payments into per-method sums for the receipt footer.
func methodTotals(payments []pos.Payment) []pos.MethodTotalResponse {
	totals := make(map[pos.PaymentMethod]decimal.Decimal)
	for _, p := range payments {
		totals[p.Method] = totals[p.Method].Add(p.Amount)
	}

	out := make([]pos.MethodTotalResponse, 0, len(totals))
	for method, total := range totals {
		out = append(out, pos.MethodTotalResponse{Method: string(method), Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// ========== MAPPERS ==========

func mapToOrderResponse(order pos.Order) pos.OrderResponse {
	items := make([]pos.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		modifiers := make([]pos.ModifierResponse, 0, len(item.Modifiers))
		for _, m := range item.Modifiers {
			modifiers = append(modifiers, pos.ModifierResponse{
				ID:              m.ID,
				Name:            m.Name,
				PriceAdjustment: m.PriceAdjustment,
			})
		}
		items = append(items, pos.OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Modifiers:  modifiers,
			TotalPrice: item.TotalPrice,
		})
	}
	return pos.OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		IsPaid:      order.IsPaid,
		Items:       items,
	}
}

func mapToSplitResponse(split pos.BillSplit) pos.BillSplitResponse {
	lines := make([]pos.SplitLineResponse, 0, len(split.Lines))
	for _, line := range split.Lines {
		var method *string
		if line.PaymentMethod != nil {
			m := string(*line.PaymentMethod)
			method = &m
		}
		lines = append(lines, pos.SplitLineResponse{
			ID:            line.ID,
			CustomerInfo:  line.CustomerInfo,
			Amount:        line.Amount,
			PaymentMethod: method,
			ItemIDs:       line.ItemIDs,
		})
	}
	return pos.BillSplitResponse{
		ID:      split.ID,
		OrderID: split.OrderID,
		Type:    string(split.Type),
		Stage:   string(split.Stage),
		Lines:   lines,
	}
}
