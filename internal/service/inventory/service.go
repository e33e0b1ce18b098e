package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lengolf/lengolf-backend-go/internal/domain/inventory"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

type InventoryServiceImpl struct {
	db            *database.DB
	inventoryRepo inventory.InventoryRepository
	staffRepo     staff.StaffRepository
}

func NewInventoryService(
	db *database.DB,
	inventoryRepo inventory.InventoryRepository,
	staffRepo staff.StaffRepository,
) inventory.InventoryService {
	return &InventoryServiceImpl{
		db:            db,
		inventoryRepo: inventoryRepo,
		staffRepo:     staffRepo,
	}
}

func (s *InventoryServiceImpl) ListProducts(ctx context.Context) ([]inventory.ProductResponse, error) {
	products, err := s.inventoryRepo.ListActiveProducts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, inventory.ProductResponse{
			ID:               p.ID,
			Name:             p.Name,
			Category:         p.Category,
			Unit:             p.Unit,
			ReorderThreshold: p.ReorderThreshold,
		})
	}
	return responses, nil
}

func (s *InventoryServiceImpl) SubmitStock(ctx context.Context, req inventory.SubmitStockRequest) (inventory.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.SubmissionResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return inventory.SubmissionResponse{}, err
	}
	if !member.IsActive {
		return inventory.SubmissionResponse{}, staff.ErrStaffInactive
	}

	products, err := s.inventoryRepo.ListActiveProducts(ctx)
	if err != nil {
		return inventory.SubmissionResponse{}, err
	}
	nameByID := make(map[string]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}

	date, _ := validator.IsValidDate(req.Date)
	submission := inventory.StockSubmission{
		ID:      uuid.New().String(),
		StaffID: req.StaffID,
		Date:    date,
		Lines:   make([]inventory.SubmissionLine, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		name, ok := nameByID[line.ProductID]
		if !ok {
			return inventory.SubmissionResponse{}, inventory.ErrProductNotFound
		}
		submission.Lines = append(submission.Lines, inventory.SubmissionLine{
			ProductID:   line.ProductID,
			ProductName: name,
			Quantity:    line.Quantity,
			Note:        line.Note,
		})
	}

	created, err := s.inventoryRepo.CreateSubmission(ctx, submission)
	if err != nil {
		// Check for duplicate staff/date form (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return inventory.SubmissionResponse{}, inventory.ErrDuplicateSubmission
			}
		}
		return inventory.SubmissionResponse{}, err
	}
	created.StaffName = &member.Name
	return mapToSubmissionResponse(created), nil
}

func (s *InventoryServiceImpl) GetSubmission(ctx context.Context, id string) (inventory.SubmissionResponse, error) {
	submission, err := s.inventoryRepo.GetSubmissionByID(ctx, id)
	if err != nil {
		return inventory.SubmissionResponse{}, err
	}
	return mapToSubmissionResponse(submission), nil
}

func (s *InventoryServiceImpl) ListSubmissions(ctx context.Context, from, to string) ([]inventory.SubmissionResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "from", Message: "must be YYYY-MM-DD"}}
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "to", Message: "must be YYYY-MM-DD"}}
	}

	submissions, err := s.inventoryRepo.ListSubmissions(ctx, fromDate, toDate.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, mapToSubmissionResponse(submission))
	}
	return responses, nil
}

func (s *InventoryServiceImpl) LowStockReport(ctx context.Context) ([]inventory.LowStockResponse, error) {
	items, err := s.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.LowStockResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, inventory.LowStockResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Unit:         item.Unit,
			LastQuantity: item.LastQuantity,
			Threshold:    item.Threshold,
			CountedAt:    item.CountedAt.Format("2006-01-02"),
		})
	}
	return responses, nil
}

func mapToSubmissionResponse(sub inventory.StockSubmission) inventory.SubmissionResponse {
	lines := make([]inventory.SubmissionLineResponse, 0, len(sub.Lines))
	for _, line := range sub.Lines {
		lines = append(lines, inventory.SubmissionLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Note:        line.Note,
		})
	}
	return inventory.SubmissionResponse{
		ID:        sub.ID,
		StaffID:   sub.StaffID,
		StaffName: sub.StaffName,
		Date:      sub.Date.Format("2006-01-02"),
		Lines:     lines,
	}
}
