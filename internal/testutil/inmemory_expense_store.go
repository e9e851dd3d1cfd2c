package testutil

import (
	"context"

	domainExpense "github.com/bizledger/bizledger/internal/domain/expense"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// InMemoryExpenseStore implements an in-memory expense repository for testing
type InMemoryExpenseStore struct {
	*InMemoryStore[*domainExpense.Expense]
}

func NewInMemoryExpenseStore() *InMemoryExpenseStore {
	return &InMemoryExpenseStore{
		InMemoryStore: NewInMemoryStore[*domainExpense.Expense](),
	}
}

func (s *InMemoryExpenseStore) Create(ctx context.Context, e *domainExpense.Expense) error {
	return s.InMemoryStore.Create(ctx, e.ID, e)
}

func (s *InMemoryExpenseStore) Get(ctx context.Context, id string) (*domainExpense.Expense, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || e.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("expense not found").
			WithHintf("Expense with ID %s was not found", id).
			WithReportableDetails(map[string]any{"expense_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return e, nil
}

func (s *InMemoryExpenseStore) List(ctx context.Context, filter *types.QueryFilter) ([]*domainExpense.Expense, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainExpense.Expense) bool {
			return e.TenantID == types.GetTenantID(ctx)
		},
		func(i, j *domainExpense.Expense) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryExpenseStore) ListByStatus(ctx context.Context, status types.ExpenseStatus, filter *types.QueryFilter) ([]*domainExpense.Expense, error) {
	return s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, e *domainExpense.Expense) bool {
			return e.TenantID == types.GetTenantID(ctx) && e.ExpenseStatus == status
		},
		func(i, j *domainExpense.Expense) bool { return i.CreatedAt.After(j.CreatedAt) })
}

func (s *InMemoryExpenseStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, func(ctx context.Context, e *domainExpense.Expense) bool {
		return e.TenantID == types.GetTenantID(ctx)
	})
}

func (s *InMemoryExpenseStore) Update(ctx context.Context, e *domainExpense.Expense) error {
	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, e.ID, e)
}

func (s *InMemoryExpenseStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.InMemoryStore.Delete(ctx, id)
}
