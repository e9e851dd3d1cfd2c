package attendance

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for attendance data access
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	Get(ctx context.Context, id string) (*Attendance, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*Attendance, error)
	ListByDateRange(ctx context.Context, from, to time.Time, filter *types.QueryFilter) ([]*Attendance, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) error
}
