package testutil

import (
	"context"

	domainPayroll "github.com/bizledger/bizledger/internal/domain/payroll"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryPayrollStore implements an in-memory payroll repository for testing
type InMemoryPayrollStore struct {
	*InMemoryStore[*domainPayroll.Payroll]
}

func NewInMemoryPayrollStore() *InMemoryPayrollStore {
	return &InMemoryPayrollStore{
		InMemoryStore: NewInMemoryStore[*domainPayroll.Payroll](),
	}
}

func (s *InMemoryPayrollStore) Create(ctx context.Context, p *domainPayroll.Payroll) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPayrollStore) Get(ctx context.Context, id string) (*domainPayroll.Payroll, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("payroll record not found").
			WithHintf("Payroll record with ID %s was not found", id).
			WithReportableDetails(map[string]any{"payroll_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPayrollStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainPayroll.Payroll, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayroll.Payroll) bool {
			return p.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainPayroll.Payroll) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPayrollStore) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*domainPayroll.Payroll, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayroll.Payroll) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.EmployeeID == employeeID
		},
		func(i, j *domainPayroll.Payroll) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPayrollStore) ListByStatus(ctx context.Context, status types.PayrollStatus, filter *types.QueryFilter) ([]*domainPayroll.Payroll, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayroll.Payroll) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.PayrollStatus == status
		},
		func(i, j *domainPayroll.Payroll) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPayrollStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, p *domainPayroll.Payroll) bool {
		return p.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryPayrollStore) Update(ctx context.Context, p *domainPayroll.Payroll) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPayrollStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
