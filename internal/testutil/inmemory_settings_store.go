package testutil

import (
	"context"

	domainSettings "github.com/bizledger/bizledger/internal/domain/settings"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemorySettingsStore implements an in-memory settings repository for testing
type InMemorySettingsStore struct {
	*InMemoryStore[*domainSettings.Setting]
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{
		InMemoryStore: NewInMemoryStore[*domainSettings.Setting](),
	}
}

func (s *InMemorySettingsStore) GetByKey(ctx context.Context, key string) (*domainSettings.Setting, error) {
	tenantID := types.GetTenantID(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, setting := range s.items {
		if setting.TenantID == tenantID && setting.Key == key {
			return setting, nil
		}
	}

	return nil, ierr.NewError("setting not found").
		WithHintf("Setting with key %s was not found", key).
		WithReportableDetails(map[string]any{"key": key}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemorySettingsStore) ListByCategory(ctx context.Context, category string) ([]*domainSettings.Setting, error) {
	return s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(),
		func(ctx context.Context, setting *domainSettings.Setting) bool {
			return setting.TenantID == types.GetTenantID(ctx) && setting.Category == category
		},
		func(i, j *domainSettings.Setting) bool { return i.Key < j.Key })
}

func (s *InMemorySettingsStore) ListAll(ctx context.Context) ([]*domainSettings.Setting, error) {
	return s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(),
		func(ctx context.Context, setting *domainSettings.Setting) bool {
			return setting.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainSettings.Setting) bool { return i.Key < j.Key })
}

func (s *InMemorySettingsStore) Upsert(ctx context.Context, setting *domainSettings.Setting) error {
	tenantID := types.GetTenantID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Same key overwrites the value in place
	for id, existing := range s.items {
		if existing.TenantID == tenantID && existing.Key == setting.Key {
			setting.ID = existing.ID
			s.items[id] = setting
			return nil
		}
	}

	s.items[setting.ID] = setting
	return nil
}

func (s *InMemorySettingsStore) DeleteByKey(ctx context.Context, key string) error {
	tenantID := types.GetTenantID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, setting := range s.items {
		if setting.TenantID == tenantID && setting.Key == key {
			delete(s.items, id)
			return nil
		}
	}

	return ierr.NewError("setting not found").
		WithHintf("Setting with key %s was not found", key).
		WithReportableDetails(map[string]any{"key": key}).
		Mark(ierr.ErrNotFound)
}
