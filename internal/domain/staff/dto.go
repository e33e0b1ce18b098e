package staff

import (
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name     string  `json:"name"`
	Nickname *string `json:"nickname,omitempty"`
	Role     string  `json:"role"`
	PIN      string  `json:"pin"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Role != string(RoleAdmin) && r.Role != string(RoleStaff) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'admin' or 'staff'"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Role     *string `json:"role,omitempty"`
	PIN      *string `json:"pin,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Role != nil && *r.Role != string(RoleAdmin) && *r.Role != string(RoleStaff) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'admin' or 'staff'"})
	}
	if r.PIN != nil && !validator.IsValidPIN(*r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname,omitempty"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
}
