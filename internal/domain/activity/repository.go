package activity

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for activity log data access. The
// log is append-only; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, a *Activity) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Activity, error)
	ListByEntity(ctx context.Context, entityType, entityID string, filter *types.QueryFilter) ([]*Activity, error)
	ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*Activity, error)
	Count(ctx context.Context) (int, error)
}
