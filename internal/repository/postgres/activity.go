package postgres

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/activity"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type activityRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewActivityRepository(db postgres.IClient, log *logger.Logger) activity.Repository {
	return &activityRepository{db: db, logger: log}
}

func (r *activityRepository) Create(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activity_logs (
			id, user_id, action, entity_type, entity_id, details,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		a.ID, a.UserID, a.Action, a.EntityType, a.EntityID, a.Details,
		a.TenantID, a.Status, a.CreatedAt, a.UpdatedAt, a.CreatedBy, a.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record activity").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *activityRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*activity.Activity, error) {
	activities := make([]*activity.Activity, 0)
	query := `SELECT * FROM activity_logs WHERE tenant_id = $1` +
		listSuffix(filter, "created_at", "action", "entity_type")

	err := r.db.Conn(ctx).SelectContext(ctx, &activities, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list activity").
			Mark(ierr.ErrDatabase)
	}
	return activities, nil
}

func (r *activityRepository) ListByEntity(ctx context.Context, entityType, entityID string, filter *types.QueryFilter) ([]*activity.Activity, error) {
	activities := make([]*activity.Activity, 0)
	query := `SELECT * FROM activity_logs WHERE tenant_id = $1 AND entity_type = $2 AND entity_id = $3` +
		listSuffix(filter, "created_at")

	err := r.db.Conn(ctx).SelectContext(ctx, &activities, query, types.GetTenantID(ctx), entityType, entityID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list activity by entity").
			Mark(ierr.ErrDatabase)
	}
	return activities, nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*activity.Activity, error) {
	activities := make([]*activity.Activity, 0)
	query := `SELECT * FROM activity_logs WHERE tenant_id = $1 AND user_id = $2` +
		listSuffix(filter, "created_at")

	err := r.db.Conn(ctx).SelectContext(ctx, &activities, query, types.GetTenantID(ctx), userID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list activity by user").
			Mark(ierr.ErrDatabase)
	}
	return activities, nil
}

func (r *activityRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM activity_logs WHERE tenant_id = $1`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count activity").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
