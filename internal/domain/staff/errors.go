package staff

import "errors"

var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffInactive   = errors.New("staff member is deactivated")
	ErrNameExists      = errors.New("staff member with this name already exists")
	ErrPINAlreadyInUse = errors.New("PIN is already in use by another staff member")
)
