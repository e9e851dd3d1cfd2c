package testutil

import (
	"context"

	domainPayment "github.com/bizledger/bizledger/internal/domain/payment"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryPaymentStore implements an in-memory payment repository for testing
type InMemoryPaymentStore struct {
	*InMemoryStore[*domainPayment.Payment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*domainPayment.Payment](),
	}
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *domainPayment.Payment) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*domainPayment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("payment not found").
			WithHintf("Payment with ID %s was not found", id).
			WithReportableDetails(map[string]any{"payment_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainPayment.Payment, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayment.Payment) bool {
			return p.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainPayment.Payment) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPaymentStore) ListByInvoice(ctx context.Context, invoiceID string, filter *types.QueryFilter) ([]*domainPayment.Payment, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayment.Payment) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.InvoiceID == invoiceID
		},
		func(i, j *domainPayment.Payment) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPaymentStore) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*domainPayment.Payment, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, p *domainPayment.Payment) bool {
			return p.TenantID == types.GetTenantID(ctx) && p.ClientID == clientID
		},
		func(i, j *domainPayment.Payment) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryPaymentStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, p *domainPayment.Payment) bool {
		return p.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *domainPayment.Payment) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
