package estimate

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for estimate data access
type Repository interface {
	Create(ctx context.Context, e *Estimate) error
	Get(ctx context.Context, id string) (*Estimate, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Estimate, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Estimate, error)
	ListByStatus(ctx context.Context, status types.EstimateStatus, filter *types.QueryFilter) ([]*Estimate, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, e *Estimate) error
	Delete(ctx context.Context, id string) error
}
