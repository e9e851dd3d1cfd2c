package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/expense"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type expenseRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewExpenseRepository(db postgres.IClient, log *logger.Logger) expense.Repository {
	return &expenseRepository{db: db, logger: log}
}

func (r *expenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (
			id, expense_number, category, vendor, amount, expense_date,
			payment_method, receipt_url, description, account_id, expense_status,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, e.ExpenseNumber, e.Category, e.Vendor, e.Amount, e.ExpenseDate,
		e.PaymentMethod, e.ReceiptURL, e.Description, e.AccountID,
		e.ExpenseStatus, e.TenantID, e.Status, e.CreatedAt, e.UpdatedAt,
		e.CreatedBy, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create expense").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *expenseRepository) Get(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense
	query := `SELECT * FROM expenses WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &e, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("expense not found").
				WithHintf("Expense with ID %s was not found", id).
				WithReportableDetails(map[string]any{"expense_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get expense").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *expenseRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0)
	query := `SELECT * FROM expenses WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "expense_number", "expense_date", "amount", "category")

	err := r.db.Conn(ctx).SelectContext(ctx, &expenses, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list expenses").
			Mark(ierr.ErrDatabase)
	}
	return expenses, nil
}

func (r *expenseRepository) ListByStatus(ctx context.Context, status types.ExpenseStatus, filter *types.QueryFilter) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0)
	query := `SELECT * FROM expenses WHERE tenant_id = $1 AND expense_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "expense_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &expenses, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list expenses by status").
			Mark(ierr.ErrDatabase)
	}
	return expenses, nil
}

func (r *expenseRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM expenses WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count expenses").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *expenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses SET
			expense_number = $3, category = $4, vendor = $5, amount = $6,
			expense_date = $7, payment_method = $8, receipt_url = $9,
			description = $10, account_id = $11, expense_status = $12,
			updated_at = $13, updated_by = $14
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, types.GetTenantID(ctx), e.ExpenseNumber, e.Category, e.Vendor,
		e.Amount, e.ExpenseDate, e.PaymentMethod, e.ReceiptURL,
		e.Description, e.AccountID, e.ExpenseStatus, e.UpdatedAt, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update expense").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "expense", e.ID)
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete expense").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "expense", id)
}
