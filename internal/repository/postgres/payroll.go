package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/payroll"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type payrollRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewPayrollRepository(db postgres.IClient, log *logger.Logger) payroll.Repository {
	return &payrollRepository{db: db, logger: log}
}

func (r *payrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	query := `
		INSERT INTO payroll (
			id, employee_id, pay_period_start, pay_period_end,
			basic_salary, allowances, deductions, tax, net_salary,
			payroll_status, payment_date,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, p.EmployeeID, p.PayPeriodStart, p.PayPeriodEnd,
		p.BasicSalary, p.Allowances, p.Deductions, p.Tax, p.NetSalary,
		p.PayrollStatus, p.PaymentDate,
		p.TenantID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payroll entry").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *payrollRepository) Get(ctx context.Context, id string) (*payroll.Payroll, error) {
	var p payroll.Payroll
	query := `SELECT * FROM payroll WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("payroll entry not found").
				WithHintf("Payroll entry with ID %s was not found", id).
				WithReportableDetails(map[string]any{"payroll_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get payroll entry").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*payroll.Payroll, error) {
	entries := make([]*payroll.Payroll, 0)
	query := `SELECT * FROM payroll WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "pay_period_start", "pay_period_end", "net_salary")

	err := r.db.Conn(ctx).SelectContext(ctx, &entries, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payroll entries").
			Mark(ierr.ErrDatabase)
	}
	return entries, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*payroll.Payroll, error) {
	entries := make([]*payroll.Payroll, 0)
	query := `SELECT * FROM payroll WHERE tenant_id = $1 AND employee_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "pay_period_start")

	err := r.db.Conn(ctx).SelectContext(ctx, &entries, query, types.GetTenantID(ctx), employeeID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payroll by employee").
			Mark(ierr.ErrDatabase)
	}
	return entries, nil
}

func (r *payrollRepository) ListByStatus(ctx context.Context, status types.PayrollStatus, filter *types.QueryFilter) ([]*payroll.Payroll, error) {
	entries := make([]*payroll.Payroll, 0)
	query := `SELECT * FROM payroll WHERE tenant_id = $1 AND payroll_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "pay_period_start")

	err := r.db.Conn(ctx).SelectContext(ctx, &entries, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payroll by status").
			Mark(ierr.ErrDatabase)
	}
	return entries, nil
}

func (r *payrollRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM payroll WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payroll entries").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *payrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	query := `
		UPDATE payroll SET
			employee_id = $3, pay_period_start = $4, pay_period_end = $5,
			basic_salary = $6, allowances = $7, deductions = $8, tax = $9,
			net_salary = $10, payroll_status = $11, payment_date = $12,
			updated_at = $13, updated_by = $14
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, types.GetTenantID(ctx), p.EmployeeID, p.PayPeriodStart,
		p.PayPeriodEnd, p.BasicSalary, p.Allowances, p.Deductions, p.Tax,
		p.NetSalary, p.PayrollStatus, p.PaymentDate, p.UpdatedAt, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payroll entry").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "payroll entry", p.ID)
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payroll WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete payroll entry").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "payroll entry", id)
}
