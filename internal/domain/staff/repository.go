package staff

import "context"

// StaffRepository defines data access methods for staff records.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, includeInactive bool) ([]Staff, error)
	Update(ctx context.Context, s Staff) error

	// GetActive returns every active staff member. PIN login has no
	// username, so candidate hashes are matched in full.
	GetActive(ctx context.Context) ([]Staff, error)
}
