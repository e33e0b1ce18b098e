package auth

import (
	"context"

	"github.com/lengolf/lengolf-backend-go/internal/domain/auth"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	staffRepo  staff.StaffRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, staffRepo staff.StaffRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

// LoginWithPIN matches the PIN against every active staff member's hash.
// There is no username on the POS keypad, so the PIN is the whole
// credential.
func (s *AuthServiceImpl) LoginWithPIN(ctx context.Context, req auth.PINLoginRequest) (auth.PINLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.PINLoginResponse{}, err
	}

	members, err := s.staffRepo.GetActive(ctx)
	if err != nil {
		return auth.PINLoginResponse{}, err
	}

	for _, m := range members {
		if bcrypt.CompareHashAndPassword([]byte(m.PINHash), []byte(req.PIN)) != nil {
			continue
		}

		token, expiresAt, err := s.jwtService.GenerateAccessToken(m.ID, m.Name, m.Role)
		if err != nil {
			return auth.PINLoginResponse{}, err
		}

		return auth.PINLoginResponse{
			AccessToken: token,
			ExpiresAt:   expiresAt,
			StaffID:     m.ID,
			StaffName:   m.Name,
			Role:        string(m.Role),
		}, nil
	}

	return auth.PINLoginResponse{}, auth.ErrInvalidPIN
}
