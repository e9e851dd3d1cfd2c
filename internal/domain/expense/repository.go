package expense

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for expense data access
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Get(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Expense, error)
	ListByStatus(ctx context.Context, status types.ExpenseStatus, filter *types.QueryFilter) ([]*Expense, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
}
