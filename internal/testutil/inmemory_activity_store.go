package testutil

import (
	"context"

	domainActivity "github.com/bizledger/bizledger/internal/domain/activity"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryActivityStore implements an in-memory activity log for testing
type InMemoryActivityStore struct {
	*InMemoryStore[*domainActivity.Activity]
}

func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{
		InMemoryStore: NewInMemoryStore[*domainActivity.Activity](),
	}
}

func (s *InMemoryActivityStore) Create(ctx context.Context, a *domainActivity.Activity) error {
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryActivityStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainActivity.Activity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *domainActivity.Activity) bool {
			return a.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainActivity.Activity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryActivityStore) ListByEntity(ctx context.Context, entityType, entityID string, filter *types.QueryFilter) ([]*domainActivity.Activity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *domainActivity.Activity) bool {
			return a.TenantID == types.GetTenantID(ctx) &&
				a.EntityType == entityType &&
				a.EntityID != nil && *a.EntityID == entityID
		},
		func(i, j *domainActivity.Activity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryActivityStore) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*domainActivity.Activity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, a *domainActivity.Activity) bool {
			return a.TenantID == types.GetTenantID(ctx) && a.UserID == userID
		},
		func(i, j *domainActivity.Activity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryActivityStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, a *domainActivity.Activity) bool {
		return a.TenantID == types.GetTenantID(ctx)
	})
}
