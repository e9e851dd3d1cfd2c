package testutil

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/product"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryProductStore implements an in-memory product repository for testing
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			WithReportableDetails(map[string]any{"product_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *product.Product) bool {
			return p.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *product.Product) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryProductStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, p *product.Product) bool {
		return p.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
