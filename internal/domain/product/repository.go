package product

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for product data access
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Product, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
