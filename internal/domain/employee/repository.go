package employee

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for employee data access
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Get(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Employee, error)
	ListByDepartment(ctx context.Context, department string, filter *types.QueryFilter) ([]*Employee, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}
