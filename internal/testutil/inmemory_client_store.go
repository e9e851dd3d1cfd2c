package testutil

import (
	"context"

	domainClient "github.com/bizledger/bizledger/internal/domain/client"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryClientStore implements an in-memory client repository for testing
type InMemoryClientStore struct {
	*InMemoryStore[*domainClient.Client]
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*domainClient.Client](),
	}
}

func (s *InMemoryClientStore) Create(ctx context.Context, c *domainClient.Client) error {
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryClientStore) Get(ctx context.Context, id string) (*domainClient.Client, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || c.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("client not found").
			WithHintf("Client with ID %s was not found", id).
			WithReportableDetails(map[string]any{"client_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *InMemoryClientStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainClient.Client, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, c *domainClient.Client) bool {
			return c.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainClient.Client) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryClientStore) ListByStatus(ctx context.Context, status types.ClientStatus, filter *types.QueryFilter) ([]*domainClient.Client, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, c *domainClient.Client) bool {
			return c.TenantID == types.GetTenantID(ctx) && c.ClientStatus == status
		},
		func(i, j *domainClient.Client) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryClientStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, c *domainClient.Client) bool {
		return c.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryClientStore) Update(ctx context.Context, c *domainClient.Client) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryClientStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
