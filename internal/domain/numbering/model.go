package numbering

import (
	"fmt"
	"strings"

	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// NumberFormat controls how document numbers for one document type are
// rendered. CurrentNumber is the next value to hand out.
type NumberFormat struct {
	ID           string             `db:"id" json:"id"`
	DocumentType types.DocumentType `db:"document_type" json:"document_type"`
	Prefix       string             `db:"prefix" json:"prefix"`
	Padding      int                `db:"padding" json:"padding"`
	Separator    string             `db:"separator" json:"separator"`
	CurrentNumber int64             `db:"current_number" json:"current_number"`

	types.BaseModel
}

// Render formats a counter value under this format. The separator only
// appears when a prefix is present. Values wider than the padding are
// printed in full.
func (f *NumberFormat) Render(n int64) string {
	padded := fmt.Sprintf("%0*d", f.Padding, n)
	if f.Prefix == "" {
		return padded
	}
	return f.Prefix + f.Separator + padded
}

// Example renders a sample number used in settings previews.
func (f *NumberFormat) Example() string {
	return f.Render(1)
}

// RenderLegacy formats a counter value in the fixed-width style used
// before configurable formats existed.
func RenderLegacy(prefix string, n int64) string {
	return prefix + fmt.Sprintf("%0*d", types.LegacyNumberPadding, n)
}

// Validate checks the format's fields are within accepted bounds.
func (f *NumberFormat) Validate() error {
	if err := f.DocumentType.Validate(); err != nil {
		return err
	}
	if f.Padding < types.MinNumberPadding || f.Padding > types.MaxNumberPadding {
		return ierr.NewError("invalid padding").
			WithHintf("Padding must be between %d and %d", types.MinNumberPadding, types.MaxNumberPadding).
			Mark(ierr.ErrValidation)
	}
	if strings.ContainsAny(f.Separator, "0123456789") {
		return ierr.NewError("invalid separator").
			WithHint("Separator must not contain digits").
			Mark(ierr.ErrValidation)
	}
	if f.CurrentNumber < 1 {
		return ierr.NewError("invalid current number").
			WithHint("Current number must be at least 1").
			Mark(ierr.ErrValidation)
	}
	return nil
}
