package testutil

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/attendance"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryAttendanceStore implements an in-memory attendance repository for testing
type InMemoryAttendanceStore struct {
	*InMemoryStore[*attendance.Attendance]
}

func NewInMemoryAttendanceStore() *InMemoryAttendanceStore {
	return &InMemoryAttendanceStore{
		InMemoryStore: NewInMemoryStore[*attendance.Attendance](),
	}
}

func (s *InMemoryAttendanceStore) Create(ctx context.Context, a *attendance.Attendance) error {
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryAttendanceStore) Get(ctx context.Context, id string) (*attendance.Attendance, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || a.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("attendance record not found").
			WithHintf("Attendance record with ID %s was not found", id).
			WithReportableDetails(map[string]any{"attendance_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryAttendanceStore) List(ctx context.Context, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *attendance.Attendance) bool {
			return a.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *attendance.Attendance) bool { return i.Date.After(j.Date) })
}

func (s *InMemoryAttendanceStore) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *attendance.Attendance) bool {
			return a.TenantID == types.GetTenantID(ctx) && a.EmployeeID == employeeID
		},
		func(i, j *attendance.Attendance) bool { return i.Date.After(j.Date) })
}

func (s *InMemoryAttendanceStore) ListByDateRange(ctx context.Context, from, to time.Time, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *attendance.Attendance) bool {
			return a.TenantID == types.GetTenantID(ctx) &&
				!a.Date.Before(from) && !a.Date.After(to)
		},
		func(i, j *attendance.Attendance) bool { return i.Date.After(j.Date) })
}

func (s *InMemoryAttendanceStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, a *attendance.Attendance) bool {
		return a.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryAttendanceStore) Update(ctx context.Context, a *attendance.Attendance) error {
	if _, err := s.Get(ctx, a.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, a.ID, a)
}

func (s *InMemoryAttendanceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
