package notification

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for notification data access
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	Get(ctx context.Context, id string) (*Notification, error)
	ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]*Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}
