package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/receipt"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type receiptRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewReceiptRepository(db postgres.IClient, log *logger.Logger) receipt.Repository {
	return &receiptRepository{db: db, logger: log}
}

func (r *receiptRepository) Create(ctx context.Context, rec *receipt.Receipt) error {
	query := `
		INSERT INTO receipts (
			id, receipt_number, client_id, payment_id, amount,
			payment_method, receipt_date, notes,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		rec.ID, rec.ReceiptNumber, rec.ClientID, rec.PaymentID, rec.Amount,
		rec.PaymentMethod, rec.ReceiptDate, rec.Notes,
		rec.TenantID, rec.Status, rec.CreatedAt, rec.UpdatedAt,
		rec.CreatedBy, rec.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create receipt").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *receiptRepository) Get(ctx context.Context, id string) (*receipt.Receipt, error) {
	var rec receipt.Receipt
	query := `SELECT * FROM receipts WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &rec, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("receipt not found").
				WithHintf("Receipt with ID %s was not found", id).
				WithReportableDetails(map[string]any{"receipt_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get receipt").
			Mark(ierr.ErrDatabase)
	}
	return &rec, nil
}

func (r *receiptRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*receipt.Receipt, error) {
	receipts := make([]*receipt.Receipt, 0)
	query := `SELECT * FROM receipts WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "receipt_number", "receipt_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &receipts, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list receipts").
			Mark(ierr.ErrDatabase)
	}
	return receipts, nil
}

func (r *receiptRepository) ListByClient(ctx context.Context, clientID string, filter *types.QueryFilter) ([]*receipt.Receipt, error) {
	receipts := make([]*receipt.Receipt, 0)
	query := `SELECT * FROM receipts WHERE tenant_id = $1 AND client_id = $2 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "receipt_date", "amount")

	err := r.db.Conn(ctx).SelectContext(ctx, &receipts, query, types.GetTenantID(ctx), clientID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list receipts by client").
			Mark(ierr.ErrDatabase)
	}
	return receipts, nil
}

func (r *receiptRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM receipts WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count receipts").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *receiptRepository) Update(ctx context.Context, rec *receipt.Receipt) error {
	query := `
		UPDATE receipts SET
			receipt_number = $3, client_id = $4, payment_id = $5,
			amount = $6, payment_method = $7, receipt_date = $8, notes = $9,
			updated_at = $10, updated_by = $11
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		rec.ID, types.GetTenantID(ctx), rec.ReceiptNumber, rec.ClientID,
		rec.PaymentID, rec.Amount, rec.PaymentMethod, rec.ReceiptDate,
		rec.Notes, rec.UpdatedAt, rec.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update receipt").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "receipt", rec.ID)
}

func (r *receiptRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM receipts WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete receipt").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "receipt", id)
}
