package testutil

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/numbering"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryNumberingStore implements an in-memory document number format
// repository for testing. NextNumber and ResetCounter mutate the stored
// format under the store lock, matching the atomicity of the SQL
// implementation.
type InMemoryNumberingStore struct {
	*InMemoryStore[*numbering.NumberFormat]
}

func NewInMemoryNumberingStore() *InMemoryNumberingStore {
	return &InMemoryNumberingStore{
		InMemoryStore: NewInMemoryStore[*numbering.NumberFormat](),
	}
}

func (s *InMemoryNumberingStore) GetByType(ctx context.Context, docType types.DocumentType) (*numbering.NumberFormat, error) {
	tenantID := types.GetTenantID(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.items {
		if f.TenantID == tenantID && f.DocumentType == docType {
			return f, nil
		}
	}

	return nil, ierr.NewError("number format not found").
		WithHintf("No number format configured for document type %s", docType).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryNumberingStore) ListAll(ctx context.Context) ([]*numbering.NumberFormat, error) {
	return s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(),
		func(ctx context.Context, f *numbering.NumberFormat) bool {
			return f.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *numbering.NumberFormat) bool { return i.DocumentType < j.DocumentType })
}

func (s *InMemoryNumberingStore) Upsert(ctx context.Context, f *numbering.NumberFormat) error {
	tenantID := types.GetTenantID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.items {
		if existing.TenantID == tenantID && existing.DocumentType == f.DocumentType {
			f.ID = existing.ID
			s.items[id] = f
			return nil
		}
	}

	s.items[f.ID] = f
	return nil
}

func (s *InMemoryNumberingStore) NextNumber(ctx context.Context, docType types.DocumentType) (int64, error) {
	tenantID := types.GetTenantID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.items {
		if f.TenantID == tenantID && f.DocumentType == docType {
			n := f.CurrentNumber
			f.CurrentNumber = n + 1
			return n, nil
		}
	}

	return 0, ierr.NewError("number format not found").
		WithHintf("No number format configured for document type %s", docType).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryNumberingStore) ResetCounter(ctx context.Context, docType types.DocumentType, to int64) error {
	tenantID := types.GetTenantID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.items {
		if f.TenantID == tenantID && f.DocumentType == docType {
			f.CurrentNumber = to
			return nil
		}
	}

	return ierr.NewError("number format not found").
		WithHintf("No number format configured for document type %s", docType).
		Mark(ierr.ErrNotFound)
}
