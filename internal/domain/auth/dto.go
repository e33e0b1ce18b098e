package auth

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

type PINLoginRequest struct {
	PIN string `json:"pin"`
}

func (r *PINLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PINLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	StaffID     string `json:"staff_id"`
	StaffName   string `json:"staff_name"`
	Role        string `json:"role"`
}
