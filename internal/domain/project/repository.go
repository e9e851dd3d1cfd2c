package project

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for project data access
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Project, error)
	ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*Project, error)
	ListByStatus(ctx context.Context, status types.ProjectStatus, filter *types.QueryFilter) ([]*Project, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
}
