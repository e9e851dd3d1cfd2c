package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/employee"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type employeeRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewEmployeeRepository(db postgres.IClient, log *logger.Logger) employee.Repository {
	return &employeeRepository{db: db, logger: log}
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	query := `
		INSERT INTO employees (
			id, employee_number, first_name, last_name, email, phone,
			date_of_birth, hire_date, department, position, salary,
			employment_type, employment_status,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, e.EmployeeNumber, e.FirstName, e.LastName, e.Email, e.Phone,
		e.DateOfBirth, e.HireDate, e.Department, e.Position, e.Salary,
		e.EmploymentType, e.EmploymentStatus,
		e.TenantID, e.Status, e.CreatedAt, e.UpdatedAt, e.CreatedBy, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create employee").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *employeeRepository) Get(ctx context.Context, id string) (*employee.Employee, error) {
	var e employee.Employee
	query := `SELECT * FROM employees WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &e, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("employee not found").
				WithHintf("Employee with ID %s was not found", id).
				WithReportableDetails(map[string]any{"employee_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get employee").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*employee.Employee, error) {
	employees := make([]*employee.Employee, 0)
	query := `SELECT * FROM employees WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "employee_number", "first_name", "last_name", "hire_date", "department", "salary")

	err := r.db.Conn(ctx).SelectContext(ctx, &employees, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list employees").
			Mark(ierr.ErrDatabase)
	}
	return employees, nil
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, department string, filter *types.QueryFilter) ([]*employee.Employee, error) {
	employees := make([]*employee.Employee, 0)
	query := `SELECT * FROM employees WHERE tenant_id = $1 AND department = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "last_name", "hire_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &employees, query, types.GetTenantID(ctx), department)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list employees by department").
			Mark(ierr.ErrDatabase)
	}
	return employees, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM employees WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count employees").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	query := `
		UPDATE employees SET
			employee_number = $3, first_name = $4, last_name = $5,
			email = $6, phone = $7, date_of_birth = $8, hire_date = $9,
			department = $10, position = $11, salary = $12,
			employment_type = $13, employment_status = $14,
			updated_at = $15, updated_by = $16
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, types.GetTenantID(ctx), e.EmployeeNumber, e.FirstName,
		e.LastName, e.Email, e.Phone, e.DateOfBirth, e.HireDate,
		e.Department, e.Position, e.Salary, e.EmploymentType,
		e.EmploymentStatus, e.UpdatedAt, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update employee").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "employee", e.ID)
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete employee").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "employee", id)
}
