package staff

import (
	"context"
	"testing"

	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStaffRepo struct {
	members map[string]staff.Staff
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	member, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if m.IsActive || includeInactive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s staff.Staff) error {
	if _, ok := f.members[s.ID]; !ok {
		return staff.ErrStaffNotFound
	}
	f.members[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) GetActive(ctx context.Context) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func newStaffTestService(t *testing.T) (staff.StaffService, *fakeStaffRepo) {
	t.Helper()
	repo := &fakeStaffRepo{members: map[string]staff.Staff{}}
	return NewStaffService(nil, repo), repo
}

func seedStaff(t *testing.T, repo *fakeStaffRepo, id, name, pin string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	repo.members[id] = staff.Staff{
		ID:       id,
		Name:     name,
		Role:     staff.RoleStaff,
		PINHash:  string(hash),
		IsActive: true,
	}
}

func TestCreateStaff_RejectsDuplicatePIN(t *testing.T) {
	svc, repo := newStaffTestService(t)
	seedStaff(t, repo, "s1", "Alice", "1234")

	_, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "Bob",
		Role: string(staff.RoleStaff),
		PIN:  "1234",
	})
	assert.ErrorIs(t, err, staff.ErrPINAlreadyInUse)

	resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "Bob",
		Role: string(staff.RoleStaff),
		PIN:  "5678",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestUpdateStaff_RejectsDuplicatePIN(t *testing.T) {
	svc, repo := newStaffTestService(t)
	seedStaff(t, repo, "s1", "Alice", "1234")
	seedStaff(t, repo, "s2", "Bob", "5678")

	pin := "1234"
	_, err := svc.Update(context.Background(), staff.UpdateStaffRequest{ID: "s2", PIN: &pin})
	assert.ErrorIs(t, err, staff.ErrPINAlreadyInUse)
}

func TestUpdateStaff_OwnPINUnchanged(t *testing.T) {
	svc, repo := newStaffTestService(t)
	seedStaff(t, repo, "s1", "Alice", "1234")

	// Re-submitting the current PIN is not a collision with anyone else.
	pin := "1234"
	_, err := svc.Update(context.Background(), staff.UpdateStaffRequest{ID: "s1", PIN: &pin})
	require.NoError(t, err)
}

func TestCreateStaff_IgnoresInactivePIN(t *testing.T) {
	svc, repo := newStaffTestService(t)
	seedStaff(t, repo, "s1", "Alice", "1234")
	member := repo.members["s1"]
	member.IsActive = false
	repo.members["s1"] = member

	// A deactivated member's PIN cannot log in, so it is free to reuse.
	_, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name: "Bob",
		Role: string(staff.RoleStaff),
		PIN:  "1234",
	})
	require.NoError(t, err)
}
