package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/notification"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type notificationRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewNotificationRepository(db postgres.IClient, log *logger.Logger) notification.Repository {
	return &notificationRepository{db: db, logger: log}
}

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, title, message, notification_type, priority,
			entity_type, entity_id, action_url, is_read, read_at,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.NotificationType, n.Priority,
		n.EntityType, n.EntityID, n.ActionURL, n.IsRead, n.ReadAt,
		n.TenantID, n.Status, n.CreatedAt, n.UpdatedAt, n.CreatedBy, n.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create notification").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*notification.Notification, error) {
	var n notification.Notification
	query := `SELECT * FROM notifications WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &n, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("notification not found").
				WithHintf("Notification with ID %s was not found", id).
				WithReportableDetails(map[string]any{"notification_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get notification").
			Mark(ierr.ErrDatabase)
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*notification.Notification, error) {
	notifications := make([]*notification.Notification, 0)
	query := `SELECT * FROM notifications WHERE tenant_id = $1 AND user_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "priority")

	err := r.db.Conn(ctx).SelectContext(ctx, &notifications, query, types.GetTenantID(ctx), userID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list notifications").
			Mark(ierr.ErrDatabase)
	}
	return notifications, nil
}

func (r *notificationRepository) ListUnreadByUser(ctx context.Context, userID string) ([]*notification.Notification, error) {
	notifications := make([]*notification.Notification, 0)
	query := `
		SELECT * FROM notifications
		WHERE tenant_id = $1 AND user_id = $2 AND is_read = false AND status != 'deleted'
		ORDER BY created_at DESC`

	err := r.db.Conn(ctx).SelectContext(ctx, &notifications, query, types.GetTenantID(ctx), userID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list unread notifications").
			Mark(ierr.ErrDatabase)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE notifications SET is_read = true, read_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to mark notification read").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "notification", id)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := `
		UPDATE notifications SET is_read = true, read_at = NOW(), updated_at = NOW()
		WHERE tenant_id = $1 AND user_id = $2 AND is_read = false AND status != 'deleted'`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query, types.GetTenantID(ctx), userID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to mark notifications read").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM notifications WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete notification").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "notification", id)
}
