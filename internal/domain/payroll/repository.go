package payroll

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for payroll data access
type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	Get(ctx context.Context, id string) (*Payroll, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*Payroll, error)
	ListByStatus(ctx context.Context, status types.PayrollStatus, filter *types.QueryFilter) ([]*Payroll, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error
}
