package payment

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for payment data access
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string, filter *types.QueryFilter) ([]*Payment, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Payment, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id string) error
}
