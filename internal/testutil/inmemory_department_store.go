package testutil

import (
	"context"

	domainDepartment "github.com/bizledger/bizledger/internal/domain/department"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryDepartmentStore implements an in-memory department repository for testing
type InMemoryDepartmentStore struct {
	*InMemoryStore[*domainDepartment.Department]
}

func NewInMemoryDepartmentStore() *InMemoryDepartmentStore {
	return &InMemoryDepartmentStore{
		InMemoryStore: NewInMemoryStore[*domainDepartment.Department](),
	}
}

func (s *InMemoryDepartmentStore) Create(ctx context.Context, d *domainDepartment.Department) error {
	return s.InMemoryStore.Create(ctx, d.ID, d)
}

func (s *InMemoryDepartmentStore) Get(ctx context.Context, id string) (*domainDepartment.Department, error) {
	d, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || d.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("department not found").
			WithHintf("Department with ID %s was not found", id).
			WithReportableDetails(map[string]any{"department_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return d, nil
}

func (s *InMemoryDepartmentStore) GetByName(ctx context.Context, name string) (*domainDepartment.Department, error) {
	tenantID := types.GetTenantID(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.items {
		if d.TenantID == tenantID && d.Name == name {
			return d, nil
		}
	}

	return nil, ierr.NewError("department not found").
		WithHintf("Department %s was not found", name).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryDepartmentStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainDepartment.Department, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, d *domainDepartment.Department) bool {
			return d.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainDepartment.Department) bool { return i.Name < j.Name })
}

func (s *InMemoryDepartmentStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, d *domainDepartment.Department) bool {
		return d.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryDepartmentStore) Update(ctx context.Context, d *domainDepartment.Department) error {
	if _, err := s.Get(ctx, d.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, d.ID, d)
}

func (s *InMemoryDepartmentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
