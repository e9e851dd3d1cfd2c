package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/settings"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type settingsRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewSettingsRepository(db postgres.IClient, log *logger.Logger) settings.Repository {
	return &settingsRepository{db: db, logger: log}
}

func (r *settingsRepository) GetByKey(ctx context.Context, key string) (*settings.Setting, error) {
	var s settings.Setting
	query := `SELECT * FROM settings WHERE key = $1 AND tenant_id = $2`

	err := r.db.Conn(ctx).GetContext(ctx, &s, query, key, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("setting not found").
				WithHintf("Setting %s was not found", key).
				WithReportableDetails(map[string]any{"key": key}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get setting").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *settingsRepository) ListByCategory(ctx context.Context, category string) ([]*settings.Setting, error) {
	items := make([]*settings.Setting, 0)
	query := `SELECT * FROM settings WHERE tenant_id = $1 AND category = $2 ORDER BY key ASC`

	err := r.db.Conn(ctx).SelectContext(ctx, &items, query, types.GetTenantID(ctx), category)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list settings by category").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func (r *settingsRepository) ListAll(ctx context.Context) ([]*settings.Setting, error) {
	items := make([]*settings.Setting, 0)
	query := `SELECT * FROM settings WHERE tenant_id = $1 ORDER BY key ASC`

	err := r.db.Conn(ctx).SelectContext(ctx, &items, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list settings").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

// Upsert writes the value in place, keyed on (tenant_id, key).
func (r *settingsRepository) Upsert(ctx context.Context, s *settings.Setting) error {
	query := `
		INSERT INTO settings (
			id, key, value, category, description,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (tenant_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		s.ID, s.Key, s.Value, s.Category, s.Description,
		s.TenantID, s.Status, s.CreatedAt, s.UpdatedAt, s.CreatedBy, s.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save setting").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *settingsRepository) DeleteByKey(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, key, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete setting").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "setting", key)
}
