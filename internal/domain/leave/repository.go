package leave

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for leave request data access
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	Get(ctx context.Context, id string) (*Leave, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Leave, error)
	ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*Leave, error)
	ListByStatus(ctx context.Context, status types.LeaveStatus, filter *types.QueryFilter) ([]*Leave, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error
}
