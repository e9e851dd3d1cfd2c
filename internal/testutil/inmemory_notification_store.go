package testutil

import (
	"context"
	"time"

	domainNotification "github.com/bizledger/bizledger/internal/domain/notification"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryNotificationStore implements an in-memory notification repository for testing
type InMemoryNotificationStore struct {
	*InMemoryStore[*domainNotification.Notification]
}

func NewInMemoryNotificationStore() *InMemoryNotificationStore {
	return &InMemoryNotificationStore{
		InMemoryStore: NewInMemoryStore[*domainNotification.Notification](),
	}
}

func notificationNotFound(id string) error {
	return ierr.NewError("notification not found").
		WithHintf("Notification with ID %s was not found", id).
		WithReportableDetails(map[string]any{"notification_id": id}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryNotificationStore) Create(ctx context.Context, n *domainNotification.Notification) error {
	return s.InMemoryStore.Create(ctx, n.ID, n)
}

func (s *InMemoryNotificationStore) Get(ctx context.Context, id string) (*domainNotification.Notification, error) {
	n, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || n.TenantID != types.GetTenantID(ctx) {
		return nil, notificationNotFound(id)
	}
	return n, nil
}

func (s *InMemoryNotificationStore) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*domainNotification.Notification, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, n *domainNotification.Notification) bool {
			return n.TenantID == types.GetTenantID(ctx) && n.UserID == userID
		},
		func(i, j *domainNotification.Notification) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryNotificationStore) ListUnreadByUser(ctx context.Context, userID string) ([]*domainNotification.Notification, error) {
	return s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(),
		func(ctx context.Context, n *domainNotification.Notification) bool {
			return n.TenantID == types.GetTenantID(ctx) && n.UserID == userID && !n.IsRead
		},
		func(i, j *domainNotification.Notification) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryNotificationStore) MarkRead(ctx context.Context, id string) error {
	n, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	n.IsRead = true
	n.ReadAt = &now
	return s.InMemoryStore.Update(ctx, id, n)
}

func (s *InMemoryNotificationStore) MarkAllRead(ctx context.Context, userID string) error {
	tenantID := types.GetTenantID(ctx)
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.TenantID == tenantID && n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (s *InMemoryNotificationStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
