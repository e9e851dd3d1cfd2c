package department

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for department data access
type Repository interface {
	Create(ctx context.Context, d *Department) error
	Get(ctx context.Context, id string) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Department, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id string) error
}
