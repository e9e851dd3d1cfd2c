package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/numbering"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type numberingRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewNumberingRepository(db postgres.IClient, log *logger.Logger) numbering.Repository {
	return &numberingRepository{db: db, logger: log}
}

func (r *numberingRepository) GetByType(ctx context.Context, docType types.DocumentType) (*numbering.NumberFormat, error) {
	var f numbering.NumberFormat
	query := `SELECT * FROM document_number_formats WHERE document_type = $1 AND tenant_id = $2`

	err := r.db.Conn(ctx).GetContext(ctx, &f, query, docType, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("number format not found").
				WithHintf("No number format is configured for %s", docType).
				WithReportableDetails(map[string]any{"document_type": docType}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get number format").
			Mark(ierr.ErrDatabase)
	}
	return &f, nil
}

func (r *numberingRepository) ListAll(ctx context.Context) ([]*numbering.NumberFormat, error) {
	formats := make([]*numbering.NumberFormat, 0)
	query := `SELECT * FROM document_number_formats WHERE tenant_id = $1 ORDER BY document_type ASC`

	err := r.db.Conn(ctx).SelectContext(ctx, &formats, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list number formats").
			Mark(ierr.ErrDatabase)
	}
	return formats, nil
}

// Upsert writes the format keyed on (tenant_id, document_type). The
// counter is only overwritten when the caller supplies one, so editing
// the prefix does not reset the sequence.
func (r *numberingRepository) Upsert(ctx context.Context, f *numbering.NumberFormat) error {
	query := `
		INSERT INTO document_number_formats (
			id, document_type, prefix, padding, separator, current_number,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (tenant_id, document_type) DO UPDATE SET
			prefix = EXCLUDED.prefix,
			padding = EXCLUDED.padding,
			separator = EXCLUDED.separator,
			current_number = EXCLUDED.current_number,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		f.ID, f.DocumentType, f.Prefix, f.Padding, f.Separator, f.CurrentNumber,
		f.TenantID, f.Status, f.CreatedAt, f.UpdatedAt, f.CreatedBy, f.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save number format").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// NextNumber claims the current counter value in a single statement so
// concurrent callers never see the same number.
func (r *numberingRepository) NextNumber(ctx context.Context, docType types.DocumentType) (int64, error) {
	var claimed int64
	query := `
		UPDATE document_number_formats
		SET current_number = current_number + 1, updated_at = NOW()
		WHERE tenant_id = $1 AND document_type = $2
		RETURNING current_number - 1`

	err := r.db.Conn(ctx).GetContext(ctx, &claimed, query, types.GetTenantID(ctx), docType)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ierr.NewError("number format not found").
				WithHintf("No number format is configured for %s", docType).
				Mark(ierr.ErrNotFound)
		}
		return 0, ierr.WithError(err).
			WithHint("Failed to claim next document number").
			Mark(ierr.ErrDatabase)
	}
	return claimed, nil
}

func (r *numberingRepository) ResetCounter(ctx context.Context, docType types.DocumentType, to int64) error {
	query := `
		UPDATE document_number_formats
		SET current_number = $3, updated_at = NOW()
		WHERE tenant_id = $1 AND document_type = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, types.GetTenantID(ctx), docType, to)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to reset document counter").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "number format", string(docType))
}
