package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/department"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type departmentRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewDepartmentRepository(db postgres.IClient, log *logger.Logger) department.Repository {
	return &departmentRepository{db: db, logger: log}
}

func (r *departmentRepository) Create(ctx context.Context, d *department.Department) error {
	query := `
		INSERT INTO departments (
			id, name, description, manager_id, budget,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		d.ID, d.Name, d.Description, d.ManagerID, d.Budget,
		d.TenantID, d.Status, d.CreatedAt, d.UpdatedAt, d.CreatedBy, d.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create department").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *departmentRepository) Get(ctx context.Context, id string) (*department.Department, error) {
	var d department.Department
	query := `SELECT * FROM departments WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &d, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("department not found").
				WithHintf("Department with ID %s was not found", id).
				WithReportableDetails(map[string]any{"department_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get department").
			Mark(ierr.ErrDatabase)
	}
	return &d, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	var d department.Department
	query := `SELECT * FROM departments WHERE name = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &d, query, name, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("department not found").
				WithHintf("Department %s was not found", name).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get department by name").
			Mark(ierr.ErrDatabase)
	}
	return &d, nil
}

func (r *departmentRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*department.Department, error) {
	departments := make([]*department.Department, 0)
	query := `SELECT * FROM departments WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "name", "budget")

	err := r.db.Conn(ctx).SelectContext(ctx, &departments, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list departments").
			Mark(ierr.ErrDatabase)
	}
	return departments, nil
}

func (r *departmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM departments WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count departments").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *departmentRepository) Update(ctx context.Context, d *department.Department) error {
	query := `
		UPDATE departments SET
			name = $3, description = $4, manager_id = $5, budget = $6,
			updated_at = $7, updated_by = $8
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		d.ID, types.GetTenantID(ctx), d.Name, d.Description, d.ManagerID,
		d.Budget, d.UpdatedAt, d.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update department").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "department", d.ID)
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM departments WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete department").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "department", id)
}
