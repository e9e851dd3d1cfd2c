package postgres

import (
	"context"
	"database/sql"

	svc "github.com/bizledger/bizledger/internal/domain/service"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type serviceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewServiceRepository(db postgres.IClient, log *logger.Logger) svc.Repository {
	return &serviceRepository{db: db, logger: log}
}

func (r *serviceRepository) Create(ctx context.Context, s *svc.Service) error {
	query := `
		INSERT INTO services (
			id, name, description, category, hourly_rate, fixed_price,
			unit, tax_rate, is_active,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		s.ID, s.Name, s.Description, s.Category, s.HourlyRate, s.FixedPrice,
		s.Unit, s.TaxRate, s.IsActive,
		s.TenantID, s.Status, s.CreatedAt, s.UpdatedAt, s.CreatedBy, s.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create service").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id string) (*svc.Service, error) {
	var s svc.Service
	query := `SELECT * FROM services WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &s, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("service not found").
				WithHintf("Service with ID %s was not found", id).
				WithReportableDetails(map[string]any{"service_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get service").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *serviceRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*svc.Service, error) {
	services := make([]*svc.Service, 0)
	query := `SELECT * FROM services WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "name", "category", "hourly_rate", "fixed_price")

	err := r.db.Conn(ctx).SelectContext(ctx, &services, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list services").
			Mark(ierr.ErrDatabase)
	}
	return services, nil
}

func (r *serviceRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM services WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count services").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *serviceRepository) Update(ctx context.Context, s *svc.Service) error {
	query := `
		UPDATE services SET
			name = $3, description = $4, category = $5, hourly_rate = $6,
			fixed_price = $7, unit = $8, tax_rate = $9, is_active = $10,
			updated_at = $11, updated_by = $12
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		s.ID, types.GetTenantID(ctx), s.Name, s.Description, s.Category,
		s.HourlyRate, s.FixedPrice, s.Unit, s.TaxRate, s.IsActive,
		s.UpdatedAt, s.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update service").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "service", s.ID)
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM services WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete service").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "service", id)
}
