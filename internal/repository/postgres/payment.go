package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/payment"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type paymentRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewPaymentRepository(db postgres.IClient, log *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: log}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			id, invoice_id, client_id, amount, payment_date,
			payment_method, reference_number, notes,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, p.InvoiceID, p.ClientID, p.Amount, p.PaymentDate,
		p.PaymentMethod, p.ReferenceNumber, p.Notes,
		p.TenantID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	query := `SELECT * FROM payments WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("payment not found").
				WithHintf("Payment with ID %s was not found", id).
				WithReportableDetails(map[string]any{"payment_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get payment").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)
	query := `SELECT * FROM payments WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "payment_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &payments, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string, filter *types.QueryFilter) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)
	query := `SELECT * FROM payments WHERE tenant_id = $1 AND invoice_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "payment_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &payments, query, types.GetTenantID(ctx), invoiceID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments by invoice").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)
	query := `SELECT * FROM payments WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "payment_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &payments, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments by client").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM payments WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payments").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments SET
			invoice_id = $3, client_id = $4, amount = $5, payment_date = $6,
			payment_method = $7, reference_number = $8, notes = $9,
			updated_at = $10, updated_by = $11
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, types.GetTenantID(ctx), p.InvoiceID, p.ClientID, p.Amount,
		p.PaymentDate, p.PaymentMethod, p.ReferenceNumber, p.Notes,
		p.UpdatedAt, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payment").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "payment", p.ID)
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payments WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete payment").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "payment", id)
}
