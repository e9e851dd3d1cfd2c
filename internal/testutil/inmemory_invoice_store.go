package testutil

import (
	"context"

	domainInvoice "github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryInvoiceStore implements an in-memory invoice repository for testing
type InMemoryInvoiceStore struct {
	*InMemoryStore[*domainInvoice.Invoice]
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*domainInvoice.Invoice](),
	}
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *domainInvoice.Invoice) error {
	return s.InMemoryStore.Create(ctx, inv.ID, inv)
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || inv.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			WithReportableDetails(map[string]any{"invoice_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return inv, nil
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainInvoice.Invoice, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, inv *domainInvoice.Invoice) bool {
			return inv.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainInvoice.Invoice) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryInvoiceStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*domainInvoice.Invoice, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, inv *domainInvoice.Invoice) bool {
			return inv.TenantID == types.GetTenantID(ctx) && inv.ClientID == clientID
		},
		func(i, j *domainInvoice.Invoice) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryInvoiceStore) ListByStatus(ctx context.Context, status types.InvoiceStatus, filter *types.QueryFilter) ([]*domainInvoice.Invoice, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, inv *domainInvoice.Invoice) bool {
			return inv.TenantID == types.GetTenantID(ctx) && inv.InvoiceStatus == status
		},
		func(i, j *domainInvoice.Invoice) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, inv *domainInvoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *domainInvoice.Invoice) error {
	if _, err := s.Get(ctx, inv.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, inv.ID, inv)
}

func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
