package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/opportunity"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type opportunityRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewOpportunityRepository(db postgres.IClient, log *logger.Logger) opportunity.Repository {
	return &opportunityRepository{db: db, logger: log}
}

func (r *opportunityRepository) Create(ctx context.Context, o *opportunity.Opportunity) error {
	query := `
		INSERT INTO opportunities (
			id, title, client_id, stage, estimated_value, probability,
			expected_close_date, source, assigned_to, notes,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		o.ID, o.Title, o.ClientID, o.Stage, o.EstimatedValue, o.Probability,
		o.ExpectedCloseDate, o.Source, o.AssignedTo, o.Notes,
		o.TenantID, o.Status, o.CreatedAt, o.UpdatedAt, o.CreatedBy, o.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create opportunity").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *opportunityRepository) Get(ctx context.Context, id string) (*opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	query := `SELECT * FROM opportunities WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &o, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("opportunity not found").
				WithHintf("Opportunity with ID %s was not found", id).
				WithReportableDetails(map[string]any{"opportunity_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get opportunity").
			Mark(ierr.ErrDatabase)
	}
	return &o, nil
}

func (r *opportunityRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	opportunities := make([]*opportunity.Opportunity, 0)
	query := `SELECT * FROM opportunities WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "title", "stage", "estimated_value", "probability", "expected_close_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &opportunities, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list opportunities").
			Mark(ierr.ErrDatabase)
	}
	return opportunities, nil
}

func (r *opportunityRepository) ListByStage(ctx context.Context, stage types.OpportunityStage, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	opportunities := make([]*opportunity.Opportunity, 0)
	query := `SELECT * FROM opportunities WHERE tenant_id = $1 AND stage = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "estimated_value", "expected_close_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &opportunities, query, types.GetTenantID(ctx), stage)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list opportunities by stage").
			Mark(ierr.ErrDatabase)
	}
	return opportunities, nil
}

func (r *opportunityRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*opportunity.Opportunity, error) {
	opportunities := make([]*opportunity.Opportunity, 0)
	query := `SELECT * FROM opportunities WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "estimated_value")

	err := r.db.Conn(ctx).SelectContext(ctx, &opportunities, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list opportunities by client").
			Mark(ierr.ErrDatabase)
	}
	return opportunities, nil
}

func (r *opportunityRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM opportunities WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count opportunities").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *opportunityRepository) Update(ctx context.Context, o *opportunity.Opportunity) error {
	query := `
		UPDATE opportunities SET
			title = $3, client_id = $4, stage = $5, estimated_value = $6,
			probability = $7, expected_close_date = $8, source = $9,
			assigned_to = $10, notes = $11, updated_at = $12, updated_by = $13
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		o.ID, types.GetTenantID(ctx), o.Title, o.ClientID, o.Stage,
		o.EstimatedValue, o.Probability, o.ExpectedCloseDate, o.Source,
		o.AssignedTo, o.Notes, o.UpdatedAt, o.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update opportunity").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "opportunity", o.ID)
}

func (r *opportunityRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM opportunities WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete opportunity").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "opportunity", id)
}
