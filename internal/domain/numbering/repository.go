package numbering

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for document number format data
// access. NextNumber atomically claims and returns the current counter
// value for the type, incrementing it for the next caller; it returns
// a not found error when no format row exists for the type.
type Repository interface {
	GetByType(ctx context.Context, docType types.DocumentType) (*NumberFormat, error)
	ListAll(ctx context.Context) ([]*NumberFormat, error)
	Upsert(ctx context.Context, f *NumberFormat) error
	NextNumber(ctx context.Context, docType types.DocumentType) (int64, error)
	ResetCounter(ctx context.Context, docType types.DocumentType, to int64) error
}
