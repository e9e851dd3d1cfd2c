package testutil

import (
	"context"

	domainService "github.com/bizledger/bizledger/internal/domain/service"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryCatalogServiceStore implements an in-memory service catalog
// repository for testing
type InMemoryCatalogServiceStore struct {
	*InMemoryStore[*domainService.Service]
}

func NewInMemoryCatalogServiceStore() *InMemoryCatalogServiceStore {
	return &InMemoryCatalogServiceStore{
		InMemoryStore: NewInMemoryStore[*domainService.Service](),
	}
}

func (s *InMemoryCatalogServiceStore) Create(ctx context.Context, svc *domainService.Service) error {
	return s.InMemoryStore.Create(ctx, svc.ID, svc)
}

func (s *InMemoryCatalogServiceStore) Get(ctx context.Context, id string) (*domainService.Service, error) {
	svc, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || svc.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("service not found").
			WithHintf("Service with ID %s was not found", id).
			WithReportableDetails(map[string]any{"service_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return svc, nil
}

func (s *InMemoryCatalogServiceStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainService.Service, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, svc *domainService.Service) bool {
			return svc.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainService.Service) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryCatalogServiceStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, svc *domainService.Service) bool {
		return svc.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryCatalogServiceStore) Update(ctx context.Context, svc *domainService.Service) error {
	if _, err := s.Get(ctx, svc.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, svc.ID, svc)
}

func (s *InMemoryCatalogServiceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
