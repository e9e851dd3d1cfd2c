package testutil

import (
	"context"

	domainUser "github.com/bizledger/bizledger/internal/domain/user"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryUserStore implements an in-memory user repository for testing.
// Delete is a soft delete; deleted users stay in the map with status
// 'deleted' and are hidden from reads, like the SQL implementation.
type InMemoryUserStore struct {
	*InMemoryStore[*domainUser.User]
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*domainUser.User](),
	}
}

func userNotFound(id string) error {
	return ierr.NewError("user not found").
		WithHintf("User with ID %s was not found", id).
		WithReportableDetails(map[string]any{"user_id": id}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *domainUser.User) error {
	return s.InMemoryStore.Create(ctx, u.ID, u)
}

func (s *InMemoryUserStore) Get(ctx context.Context, id string) (*domainUser.User, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || u.TenantID != types.GetTenantID(ctx) || u.Status == types.StatusDeleted {
		return nil, userNotFound(id)
	}
	return u, nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	tenantID := types.GetTenantID(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.TenantID == tenantID && u.Email == email && u.Status != types.StatusDeleted {
			return u, nil
		}
	}

	return nil, ierr.NewError("user not found").
		WithHintf("User with email %s was not found", email).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryUserStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainUser.User, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, u *domainUser.User) bool {
			return u.TenantID == types.GetTenantID(ctx) && u.Status != types.StatusDeleted
		},
		func(i, j *domainUser.User) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryUserStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, u *domainUser.User) bool {
		return u.TenantID == types.GetTenantID(ctx) && u.Status != types.StatusDeleted
	})
}

func (s *InMemoryUserStore) Update(ctx context.Context, u *domainUser.User) error {
	if _, err := s.Get(ctx, u.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, u.ID, u)
}

func (s *InMemoryUserStore) Delete(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, u)
}
