package testutil

import (
	"context"

	domainLeave "github.com/bizledger/bizledger/internal/domain/leave"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryLeaveStore implements an in-memory leave request repository for testing
type InMemoryLeaveStore struct {
	*InMemoryStore[*domainLeave.Leave]
}

func NewInMemoryLeaveStore() *InMemoryLeaveStore {
	return &InMemoryLeaveStore{
		InMemoryStore: NewInMemoryStore[*domainLeave.Leave](),
	}
}

func (s *InMemoryLeaveStore) Create(ctx context.Context, l *domainLeave.Leave) error {
	return s.InMemoryStore.Create(ctx, l.ID, l)
}

func (s *InMemoryLeaveStore) Get(ctx context.Context, id string) (*domainLeave.Leave, error) {
	l, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || l.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("leave request not found").
			WithHintf("Leave request with ID %s was not found", id).
			WithReportableDetails(map[string]any{"leave_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return l, nil
}

func (s *InMemoryLeaveStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainLeave.Leave, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, l *domainLeave.Leave) bool {
			return l.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainLeave.Leave) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryLeaveStore) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*domainLeave.Leave, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, l *domainLeave.Leave) bool {
			return l.TenantID == types.GetTenantID(ctx) && l.EmployeeID == employeeID
		},
		func(i, j *domainLeave.Leave) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryLeaveStore) ListByStatus(ctx context.Context, status types.LeaveStatus, filter *types.QueryFilter) ([]*domainLeave.Leave, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, l *domainLeave.Leave) bool {
			return l.TenantID == types.GetTenantID(ctx) && l.LeaveStatus == status
		},
		func(i, j *domainLeave.Leave) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryLeaveStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, l *domainLeave.Leave) bool {
		return l.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryLeaveStore) Update(ctx context.Context, l *domainLeave.Leave) error {
	if _, err := s.Get(ctx, l.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, l.ID, l)
}

func (s *InMemoryLeaveStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
