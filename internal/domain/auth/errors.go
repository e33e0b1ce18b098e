package auth

import "errors"

var (
	ErrInvalidPIN    = errors.New("invalid PIN")
	ErrInvalidToken  = errors.New("invalid or missing token")
	ErrTokenExpired  = errors.New("token expired")
	ErrStaffInactive = errors.New("staff member is deactivated")
)
