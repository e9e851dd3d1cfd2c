package testutil

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/opportunity"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryOpportunityStore implements an in-memory opportunity repository for testing
type InMemoryOpportunityStore struct {
	*InMemoryStore[*opportunity.Opportunity]
}

func NewInMemoryOpportunityStore() *InMemoryOpportunityStore {
	return &InMemoryOpportunityStore{
		InMemoryStore: NewInMemoryStore[*opportunity.Opportunity](),
	}
}

func (s *InMemoryOpportunityStore) Create(ctx context.Context, o *opportunity.Opportunity) error {
	return s.InMemoryStore.Create(ctx, o.ID, o)
}

func (s *InMemoryOpportunityStore) Get(ctx context.Context, id string) (*opportunity.Opportunity, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || o.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("opportunity not found").
			WithHintf("Opportunity with ID %s was not found", id).
			WithReportableDetails(map[string]any{"opportunity_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOpportunityStore) List(ctx context.Context, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, o *opportunity.Opportunity) bool {
			return o.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *opportunity.Opportunity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryOpportunityStore) ListByStage(ctx context.Context, stage types.OpportunityStage, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, o *opportunity.Opportunity) bool {
			return o.TenantID == types.GetTenantID(ctx) && o.Stage == stage
		},
		func(i, j *opportunity.Opportunity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryOpportunityStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, o *opportunity.Opportunity) bool {
			return o.TenantID == types.GetTenantID(ctx) && o.ClientID != nil && *o.ClientID == clientID
		},
		func(i, j *opportunity.Opportunity) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryOpportunityStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, o *opportunity.Opportunity) bool {
		return o.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryOpportunityStore) Update(ctx context.Context, o *opportunity.Opportunity) error {
	if _, err := s.Get(ctx, o.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, o.ID, o)
}

func (s *InMemoryOpportunityStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
