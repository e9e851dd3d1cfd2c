package client

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for client data access
type Repository interface {
	Create(ctx context.Context, c *Client) error
	Get(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Client, error)
	ListByStatus(ctx context.Context, status types.ClientStatus, filter *types.QueryFilter) ([]*Client, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
}
