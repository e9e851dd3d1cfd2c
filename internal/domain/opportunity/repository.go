package opportunity

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for opportunity data access
type Repository interface {
	Create(ctx context.Context, o *Opportunity) error
	Get(ctx context.Context, id string) (*Opportunity, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Opportunity, error)
	ListByStage(ctx context.Context, stage types.OpportunityStage, filter *types.QueryFilter) ([]*Opportunity, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Opportunity, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, o *Opportunity) error
	Delete(ctx context.Context, id string) error
}
