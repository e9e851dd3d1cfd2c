package testutil

import (
	"context"

	domainProject "github.com/bizledger/bizledger/internal/domain/project"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryProjectStore implements an in-memory project repository for testing
type InMemoryProjectStore struct {
	*InMemoryStore[*domainProject.Project]
}

func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore[*domainProject.Project](),
	}
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *domainProject.Project) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryProjectStore) Get(ctx context.Context, id string) (*domainProject.Project, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("project not found").
			WithHintf("Project with ID %s was not found", id).
			WithReportableDetails(map[string]any{"project_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryProjectStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainProject.Project, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainProject.Project) bool {
			return p.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainProject.Project) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryProjectStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*domainProject.Project, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainProject.Project) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.ClientID == clientID
		},
		func(i, j *domainProject.Project) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryProjectStore) ListByStatus(ctx context.Context, status types.ProjectStatus, filter *types.QueryFilter) ([]*domainProject.Project, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainProject.Project) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.ProjectStatus == status
		},
		func(i, j *domainProject.Project) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryProjectStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, p *domainProject.Project) bool {
		return p.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *domainProject.Project) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryProjectStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
