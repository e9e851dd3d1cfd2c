package testutil

import (
	"context"

	domainReceipt "github.com/bizledger/bizledger/internal/domain/receipt"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryReceiptStore implements an in-memory receipt repository for testing
type InMemoryReceiptStore struct {
	*InMemoryStore[*domainReceipt.Receipt]
}

func NewInMemoryReceiptStore() *InMemoryReceiptStore {
	return &InMemoryReceiptStore{
		InMemoryStore: NewInMemoryStore[*domainReceipt.Receipt](),
	}
}

func (s *InMemoryReceiptStore) Create(ctx context.Context, r *domainReceipt.Receipt) error {
	return s.InMemoryStore.Create(ctx, r.ID, r)
}

func (s *InMemoryReceiptStore) Get(ctx context.Context, id string) (*domainReceipt.Receipt, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || r.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("receipt not found").
			WithHintf("Receipt with ID %s was not found", id).
			WithReportableDetails(map[string]any{"receipt_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return r, nil
}

func (s *InMemoryReceiptStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainReceipt.Receipt, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, r *domainReceipt.Receipt) bool {
			return r.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainReceipt.Receipt) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryReceiptStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*domainReceipt.Receipt, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, r *domainReceipt.Receipt) bool {
			return r.TenantID == types.GetTenantID(ctx) && r.ClientID == clientID
		},
		func(i, j *domainReceipt.Receipt) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryReceiptStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, r *domainReceipt.Receipt) bool {
		return r.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryReceiptStore) Update(ctx context.Context, r *domainReceipt.Receipt) error {
	if _, err := s.Get(ctx, r.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, r.ID, r)
}

func (s *InMemoryReceiptStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
