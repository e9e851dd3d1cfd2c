package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/leave"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type leaveRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewLeaveRepository(db postgres.IClient, log *logger.Logger) leave.Repository {
	return &leaveRepository{db: db, logger: log}
}

func (r *leaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, days,
			reason, leave_status, approved_by, approval_date,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Days,
		l.Reason, l.LeaveStatus, l.ApprovedBy, l.ApprovalDate,
		l.TenantID, l.Status, l.CreatedAt, l.UpdatedAt, l.CreatedBy, l.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create leave request").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *leaveRepository) Get(ctx context.Context, id string) (*leave.Leave, error) {
	var l leave.Leave
	query := `SELECT * FROM leave_requests WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &l, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("leave request not found").
				WithHintf("Leave request with ID %s was not found", id).
				WithReportableDetails(map[string]any{"leave_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get leave request").
			Mark(ierr.ErrDatabase)
	}
	return &l, nil
}

func (r *leaveRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*leave.Leave, error) {
	requests := make([]*leave.Leave, 0)
	query := `SELECT * FROM leave_requests WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "start_date", "end_date", "days")

	err := r.db.Conn(ctx).SelectContext(ctx, &requests, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list leave requests").
			Mark(ierr.ErrDatabase)
	}
	return requests, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*leave.Leave, error) {
	requests := make([]*leave.Leave, 0)
	query := `SELECT * FROM leave_requests WHERE tenant_id = $1 AND employee_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "start_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &requests, query, types.GetTenantID(ctx), employeeID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list leave requests by employee").
			Mark(ierr.ErrDatabase)
	}
	return requests, nil
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status types.LeaveStatus, filter *types.QueryFilter) ([]*leave.Leave, error) {
	requests := make([]*leave.Leave, 0)
	query := `SELECT * FROM leave_requests WHERE tenant_id = $1 AND leave_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "start_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &requests, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list leave requests by status").
			Mark(ierr.ErrDatabase)
	}
	return requests, nil
}

func (r *leaveRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM leave_requests WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count leave requests").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *leaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	query := `
		UPDATE leave_requests SET
			employee_id = $3, leave_type = $4, start_date = $5, end_date = $6,
			days = $7, reason = $8, leave_status = $9, approved_by = $10,
			approval_date = $11, updated_at = $12, updated_by = $13
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		l.ID, types.GetTenantID(ctx), l.EmployeeID, l.LeaveType,
		l.StartDate, l.EndDate, l.Days, l.Reason, l.LeaveStatus,
		l.ApprovedBy, l.ApprovalDate, l.UpdatedAt, l.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update leave request").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "leave request", l.ID)
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM leave_requests WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete leave request").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "leave request", id)
}
