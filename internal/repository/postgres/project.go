package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/project"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type projectRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewProjectRepository(db postgres.IClient, log *logger.Logger) project.Repository {
	return &projectRepository{db: db, logger: log}
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (
			id, client_id, name, description, project_status, priority,
			start_date, end_date, budget, progress,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, p.ClientID, p.Name, p.Description, p.ProjectStatus,
		p.Priority, p.StartDate, p.EndDate, p.Budget, p.Progress,
		p.TenantID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	query := `SELECT * FROM projects WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("project not found").
				WithHintf("Project with ID %s was not found", id).
				WithReportableDetails(map[string]any{"project_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get project").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*project.Project, error) {
	projects := make([]*project.Project, 0)
	query := `SELECT * FROM projects WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "name", "project_status", "priority", "end_date")

	err := r.db.Conn(ctx).SelectContext(ctx, &projects, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}
	return projects, nil
}

func (r *projectRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*project.Project, error) {
	projects := make([]*project.Project, 0)
	query := `SELECT * FROM projects WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "name")

	err := r.db.Conn(ctx).SelectContext(ctx, &projects, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects by client").
			Mark(ierr.ErrDatabase)
	}
	return projects, nil
}

func (r *projectRepository) ListByStatus(ctx context.Context, status types.ProjectStatus, filter *types.QueryFilter) ([]*project.Project, error) {
	projects := make([]*project.Project, 0)
	query := `SELECT * FROM projects WHERE tenant_id = $1 AND project_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "name")

	err := r.db.Conn(ctx).SelectContext(ctx, &projects, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects by status").
			Mark(ierr.ErrDatabase)
	}
	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM projects WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count projects").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			client_id = $3, name = $4, description = $5, project_status = $6,
			priority = $7, start_date = $8, end_date = $9, budget = $10,
			progress = $11, updated_at = $12, updated_by = $13
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, types.GetTenantID(ctx), p.ClientID, p.Name, p.Description,
		p.ProjectStatus, p.Priority, p.StartDate, p.EndDate, p.Budget,
		p.Progress, p.UpdatedAt, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update project").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "project", p.ID)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete project").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "project", id)
}
