package staff

import "time"

// Role enum
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Staff - a venue employee who can clock in/out and operate the POS
type Staff struct {
	ID        string
	Name      string
	Nickname  *string
	Role      Role
	PINHash   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
