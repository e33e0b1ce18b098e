package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type StaffServiceImpl struct {
	db        *database.DB
	staffRepo staff.StaffRepository
}

func NewStaffService(db *database.DB, staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{db: db, staffRepo: staffRepo}
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	inUse, err := s.pinInUse(ctx, req.PIN, "")
	if err != nil {
		return staff.StaffResponse{}, err
	}
	if inUse {
		return staff.StaffResponse{}, staff.ErrPINAlreadyInUse
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Nickname: req.Nickname,
		Role:     staff.Role(req.Role),
		PINHash:  string(pinHash),
		IsActive: true,
	})
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return staff.StaffResponse{}, staff.ErrNameExists
			}
		}
		return staff.StaffResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToResponse(member), nil
}

func (s *StaffServiceImpl) List(ctx context.Context, includeInactive bool) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		result = append(result, mapToResponse(m))
	}
	return result, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Nickname != nil {
		member.Nickname = req.Nickname
	}
	if req.Role != nil {
		member.Role = staff.Role(*req.Role)
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.PIN != nil {
		inUse, err := s.pinInUse(ctx, *req.PIN, member.ID)
		if err != nil {
			return staff.StaffResponse{}, err
		}
		if inUse {
			return staff.StaffResponse{}, staff.ErrPINAlreadyInUse
		}
		pinHash, err := bcrypt.GenerateFromPassword([]byte(*req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return staff.StaffResponse{}, err
		}
		member.PINHash = string(pinHash)
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToResponse(member), nil
}

// pinInUse reports whether an active staff member other than excludeID already
// uses pin. Login matches a bare PIN against every active hash, so two members
// sharing one PIN would make logins ambiguous.
func (s *StaffServiceImpl) pinInUse(ctx context.Context, pin string, excludeID string) (bool, error) {
	members, err := s.staffRepo.GetActive(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.ID == excludeID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(m.PINHash), []byte(pin)) == nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *StaffServiceImpl) Deactivate(ctx context.Context, id string) error {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	member.IsActive = false
	return s.staffRepo.Update(ctx, member)
}

func mapToResponse(m staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:       m.ID,
		Name:     m.Name,
		Nickname: m.Nickname,
		Role:     string(m.Role),
		IsActive: m.IsActive,
	}
}
