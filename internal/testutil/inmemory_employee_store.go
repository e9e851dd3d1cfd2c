package testutil

import (
	"context"

	domainEmployee "github.com/bizledger/bizledger/internal/domain/employee"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryEmployeeStore implements an in-memory employee repository for testing
type InMemoryEmployeeStore struct {
	*InMemoryStore[*domainEmployee.Employee]
}

func NewInMemoryEmployeeStore() *InMemoryEmployeeStore {
	return &InMemoryEmployeeStore{
		InMemoryStore: NewInMemoryStore[*domainEmployee.Employee](),
	}
}

func (s *InMemoryEmployeeStore) Create(ctx context.Context, e *domainEmployee.Employee) error {
	return s.InMemoryStore.Create(ctx, e.ID, e)
}

func (s *InMemoryEmployeeStore) Get(ctx context.Context, id string) (*domainEmployee.Employee, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || e.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("employee not found").
			WithHintf("Employee with ID %s was not found", id).
			WithReportableDetails(map[string]any{"employee_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return e, nil
}

func (s *InMemoryEmployeeStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainEmployee.Employee, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainEmployee.Employee) bool {
			return e.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainEmployee.Employee) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryEmployeeStore) ListByDepartment(ctx context.Context, department string, filter *types.QueryFilter) ([]*domainEmployee.Employee, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainEmployee.Employee) bool {
			return e.TenantID == types.GetTenantID(ctx) && e.Department == department
		},
		func(i, j *domainEmployee.Employee) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryEmployeeStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, e *domainEmployee.Employee) bool {
		return e.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryEmployeeStore) Update(ctx context.Context, e *domainEmployee.Employee) error {
	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, e.ID, e)
}

func (s *InMemoryEmployeeStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
