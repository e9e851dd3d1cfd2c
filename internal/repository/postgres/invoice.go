package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type invoiceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewInvoiceRepository(db postgres.IClient, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: log}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, invoice_number, client_id, title, invoice_status,
			issue_date, due_date, subtotal, tax_amount, discount_amount,
			total, paid_amount, notes, terms,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.ClientID, inv.Title, inv.InvoiceStatus,
		inv.IssueDate, inv.DueDate, inv.Subtotal, inv.TaxAmount,
		inv.DiscountAmount, inv.Total, inv.PaidAmount, inv.Notes, inv.Terms,
		inv.TenantID, inv.Status, inv.CreatedAt, inv.UpdatedAt,
		inv.CreatedBy, inv.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT * FROM invoices WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &inv, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHintf("Invoice with ID %s was not found", id).
				WithReportableDetails(map[string]any{"invoice_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)
	query := `SELECT * FROM invoices WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "updated_at", "invoice_number", "issue_date", "due_date", "total", "invoice_status")

	err := r.db.Conn(ctx).SelectContext(ctx, &invoices, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)
	query := `SELECT * FROM invoices WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "issue_date", "due_date", "total")

	err := r.db.Conn(ctx).SelectContext(ctx, &invoices, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices by client").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByStatus(ctx context.Context, status types.InvoiceStatus, filter *types.QueryFilter) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)
	query := `SELECT * FROM invoices WHERE tenant_id = $1 AND invoice_status = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "issue_date", "due_date", "total")

	err := r.db.Conn(ctx).SelectContext(ctx, &invoices, query, types.GetTenantID(ctx), status)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices by status").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM invoices WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices SET
			invoice_number = $3, client_id = $4, title = $5,
			invoice_status = $6, issue_date = $7, due_date = $8,
			subtotal = $9, tax_amount = $10, discount_amount = $11,
			total = $12, paid_amount = $13, notes = $14, terms = $15,
			updated_at = $16, updated_by = $17
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		inv.ID, types.GetTenantID(ctx), inv.InvoiceNumber, inv.ClientID,
		inv.Title, inv.InvoiceStatus, inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.TaxAmount, inv.DiscountAmount, inv.Total,
		inv.PaidAmount, inv.Notes, inv.Terms, inv.UpdatedAt, inv.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "invoice", inv.ID)
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoice").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "invoice", id)
}
