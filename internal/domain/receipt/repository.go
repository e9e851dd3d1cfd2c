package receipt

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for receipt data access
type Repository interface {
	Create(ctx context.Context, r *Receipt) error
	Get(ctx context.Context, id string) (*Receipt, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Receipt, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Receipt, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, r *Receipt) error
	Delete(ctx context.Context, id string) error
}
