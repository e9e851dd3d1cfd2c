package postgres

import (
	"context"
	"database/sql"

	domainClient "github.com/bizledger/bizledger/internal/domain/client"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type clientRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewClientRepository(db postgres.IClient, log *logger.Logger) domainClient.Repository {
	return &clientRepository{db: db, logger: log}
}

func (r *clientRepository) Create(ctx context.Context, c *domainClient.Client) error {
	query := `
		INSERT INTO clients (
			id, company_name, contact_person, email, phone, address, city,
			country, postal_code, tax_id, website, industry, client_status,
			notes, tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		c.ID, c.CompanyName, c.ContactPerson, c.Email, c.Phone, c.Address,
		c.City, c.Country, c.PostalCode, c.TaxID, c.Website, c.Industry,
		c.ClientStatus, c.Notes, c.TenantID, c.Status, c.CreatedAt,
		c.UpdatedAt, c.CreatedBy, c.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*domainClient.Client, error) {
	var c domainClient.Client
	query := `SELECT * FROM clients WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &c, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("client not found").
				WithHintf("Client with ID %s was not found", id).
				WithReportableDetails(map[string]any{"client_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainClient.Client, error) {
	clients := make([]*domainClient.Client, 0)
	query := `SELECT * FROM clients WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "company_name", "client_status")

	err := r.db.Conn(ctx).SelectContext(ctx, &clients, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}
	return clients, nil
}

func (r *clientRepository) ListByStatus(ctx context.Context, status types.ClientStatus, filter *types.QueryFilter) ([]*domainClient.Client, error) {
	clients := make([]*domainClient.Client, 0)
	query := `SELECT * FROM clients WHERE tenant_id = $1 AND client_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "company_name")

	err := r.db.Conn(ctx).SelectContext(ctx, &clients, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients by status").
			Mark(ierr.ErrDatabase)
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM clients WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count clients").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domainClient.Client) error {
	query := `
		UPDATE clients SET
			company_name = $3, contact_person = $4, email = $5, phone = $6,
			address = $7, city = $8, country = $9, postal_code = $10,
			tax_id = $11, website = $12, industry = $13, client_status = $14,
			notes = $15, updated_at = $16, updated_by = $17
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		c.ID, types.GetTenantID(ctx), c.CompanyName, c.ContactPerson,
		c.Email, c.Phone, c.Address, c.City, c.Country, c.PostalCode,
		c.TaxID, c.Website, c.Industry, c.ClientStatus, c.Notes,
		c.UpdatedAt, c.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update client").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "client", c.ID)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM clients WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete client").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "client", id)
}
