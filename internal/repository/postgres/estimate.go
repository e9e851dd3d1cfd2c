package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/estimate"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type estimateRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewEstimateRepository(db postgres.IClient, log *logger.Logger) estimate.Repository {
	return &estimateRepository{db: db, logger: log}
}

func (r *estimateRepository) Create(ctx context.Context, e *estimate.Estimate) error {
	query := `
		INSERT INTO estimates (
			id, estimate_number, client_id, title, estimate_status,
			issue_date, expiry_date, subtotal, tax_amount, discount_amount,
			total, notes, terms,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, e.EstimateNumber, e.ClientID, e.Title, e.EstimateStatus,
		e.IssueDate, e.ExpiryDate, e.Subtotal, e.TaxAmount,
		e.DiscountAmount, e.Total, e.Notes, e.Terms,
		e.TenantID, e.Status, e.CreatedAt, e.UpdatedAt, e.CreatedBy, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create estimate").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *estimateRepository) Get(ctx context.Context, id string) (*estimate.Estimate, error) {
	var e estimate.Estimate
	query := `SELECT * FROM estimates WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &e, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("estimate not found").
				WithHintf("Estimate with ID %s was not found", id).
				WithReportableDetails(map[string]any{"estimate_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get estimate").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *estimateRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*estimate.Estimate, error) {
	estimates := make([]*estimate.Estimate, 0)
	query := `SELECT * FROM estimates WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "estimate_number", "issue_date", "total", "estimate_status")

	err := r.db.Conn(ctx).SelectContext(ctx, &estimates, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list estimates").
			Mark(ierr.ErrDatabase)
	}
	return estimates, nil
}

func (r *estimateRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*estimate.Estimate, error) {
	estimates := make([]*estimate.Estimate, 0)
	query := `SELECT * FROM estimates WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "issue_date", "total")

	err := r.db.Conn(ctx).SelectContext(ctx, &estimates, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list estimates by client").
			Mark(ierr.ErrDatabase)
	}
	return estimates, nil
}

func (r *estimateRepository) ListByStatus(ctx context.Context, status types.EstimateStatus, filter *types.QueryFilter) ([]*estimate.Estimate, error) {
	estimates := make([]*estimate.Estimate, 0)
	query := `SELECT * FROM estimates WHERE tenant_id = $1 AND estimate_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "issue_date", "total")

	err := r.db.Conn(ctx).SelectContext(ctx, &estimates, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list estimates by status").
			Mark(ierr.ErrDatabase)
	}
	return estimates, nil
}

func (r *estimateRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM estimates WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count estimates").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *estimateRepository) Update(ctx context.Context, e *estimate.Estimate) error {
	query := `
		UPDATE estimates SET
			estimate_number = $3, client_id = $4, title = $5,
			estimate_status = $6, issue_date = $7, expiry_date = $8,
			subtotal = $9, tax_amount = $10, discount_amount = $11,
			total = $12, notes = $13, terms = $14,
			updated_at = $15, updated_by = $16
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		e.ID, types.GetTenantID(ctx), e.EstimateNumber, e.ClientID, e.Title,
		e.EstimateStatus, e.IssueDate, e.ExpiryDate, e.Subtotal,
		e.TaxAmount, e.DiscountAmount, e.Total, e.Notes, e.Terms,
		e.UpdatedAt, e.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update estimate").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "estimate", e.ID)
}

func (r *estimateRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM estimates WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete estimate").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "estimate", id)
}
