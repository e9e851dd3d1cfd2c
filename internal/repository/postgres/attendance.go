package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bizledger/bizledger/internal/domain/attendance"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type attendanceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewAttendanceRepository(db postgres.IClient, log *logger.Logger) attendance.Repository {
	return &attendanceRepository{db: db, logger: log}
}

func (r *attendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	query := `
		INSERT INTO attendance (
			id, employee_id, date, check_in, check_out, attendance_status, notes,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		a.ID, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut,
		a.AttendanceStatus, a.Notes,
		a.TenantID, a.Status, a.CreatedAt, a.UpdatedAt, a.CreatedBy, a.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create attendance record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *attendanceRepository) Get(ctx context.Context, id string) (*attendance.Attendance, error) {
	var a attendance.Attendance
	query := `SELECT * FROM attendance WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &a, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("attendance record not found").
				WithHintf("Attendance record with ID %s was not found", id).
				WithReportableDetails(map[string]any{"attendance_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get attendance record").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	records := make([]*attendance.Attendance, 0)
	query := `SELECT * FROM attendance WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "date")

	err := r.db.Conn(ctx).SelectContext(ctx, &records, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list attendance records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	records := make([]*attendance.Attendance, 0)
	query := `SELECT * FROM attendance WHERE tenant_id = $1 AND employee_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "date")

	err := r.db.Conn(ctx).SelectContext(ctx, &records, query, types.GetTenantID(ctx), employeeID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list attendance by employee").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *attendanceRepository) ListByDateRange(ctx context.Context, from, to time.Time, filter *types.QueryFilter) ([]*attendance.Attendance, error) {
	records := make([]*attendance.Attendance, 0)
	query := `SELECT * FROM attendance WHERE tenant_id = $1 AND date >= $2 AND date <= $3 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "date")

	err := r.db.Conn(ctx).SelectContext(ctx, &records, query, types.GetTenantID(ctx), from, to)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list attendance by date range").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *attendanceRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attendance WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count attendance records").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *attendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	query := `
		UPDATE attendance SET
			employee_id = $3, date = $4, check_in = $5, check_out = $6,
			attendance_status = $7, notes = $8, updated_at = $9, updated_by = $10
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		a.ID, types.GetTenantID(ctx), a.EmployeeID, a.Date, a.CheckIn,
		a.CheckOut, a.AttendanceStatus, a.Notes, a.UpdatedAt, a.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update attendance record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "attendance record", a.ID)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM attendance WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete attendance record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "attendance record", id)
}
