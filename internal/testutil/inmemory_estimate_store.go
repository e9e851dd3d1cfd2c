package testutil

import (
	"context"

	domainEstimate "github.com/bizledger/bizledger/internal/domain/estimate"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryEstimateStore implements an in-memory estimate repository for testing
type InMemoryEstimateStore struct {
	*InMemoryStore[*domainEstimate.Estimate]
}

func NewInMemoryEstimateStore() *InMemoryEstimateStore {
	return &InMemoryEstimateStore{
		InMemoryStore: NewInMemoryStore[*domainEstimate.Estimate](),
	}
}

func (s *InMemoryEstimateStore) Create(ctx context.Context, e *domainEstimate.Estimate) error {
	return s.InMemoryStore.Create(ctx, e.ID, e)
}

func (s *InMemoryEstimateStore) Get(ctx context.Context, id string) (*domainEstimate.Estimate, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || e.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("estimate not found").
			WithHintf("Estimate with ID %s was not found", id).
			WithReportableDetails(map[string]any{"estimate_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return e, nil
}

func (s *InMemoryEstimateStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainEstimate.Estimate, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainEstimate.Estimate) bool {
			return e.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainEstimate.Estimate) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryEstimateStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*domainEstimate.Estimate, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainEstimate.Estimate) bool {
			return e.TenantID == types.GetTenantID(ctx) && e.ClientID == clientID
		},
		func(i, j *domainEstimate.Estimate) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryEstimateStore) ListByStatus(ctx context.Context, status types.EstimateStatus, filter *types.QueryFilter) ([]*domainEstimate.Estimate, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainEstimate.Estimate) bool {
			return e.TenantID == types.GetTenantID(ctx) && e.EstimateStatus == status
		},
		func(i, j *domainEstimate.Estimate) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryEstimateStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, e *domainEstimate.Estimate) bool {
		return e.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryEstimateStore) Update(ctx context.Context, e *domainEstimate.Estimate) error {
	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, e.ID, e)
}

func (s *InMemoryEstimateStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
