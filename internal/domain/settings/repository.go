package settings

import (
	"context"
)

// Repository defines the interface for settings data access. Keys are
// unique per tenant; Upsert inserts or overwrites the value in place.
type Repository interface {
	GetByKey(ctx context.Context, key string) (*Setting, error)
	ListByCategory(ctx context.Context, category string) ([]*Setting, error)
	ListAll(ctx context.Context) ([]*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
	DeleteByKey(ctx context.Context, key string) error
}
