package invoice

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for invoice data access
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Invoice, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Invoice, error)
	ListByStatus(ctx context.Context, status types.InvoiceStatus, filter *types.QueryFilter) ([]*Invoice, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
}
