package service

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for service catalog data access
type Repository interface {
	Create(ctx context.Context, s *Service) error
	Get(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Service, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}
