package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

// DocumentType is the category a sequential document number is generated
// for.
type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeEstimate DocumentType = "estimate"
	DocumentTypeReceipt  DocumentType = "receipt"
	DocumentTypeProposal DocumentType = "proposal"
	DocumentTypeExpense  DocumentType = "expense"
)

func (t DocumentType) String() string {
	return string(t)
}

func (t DocumentType) Validate() error {
	switch t {
	case DocumentTypeInvoice, DocumentTypeEstimate, DocumentTypeReceipt,
		DocumentTypeProposal, DocumentTypeExpense:
		return nil
	}
	return ierr.NewError("invalid document type").
		WithHint("Document type must be one of invoice, estimate, receipt, proposal, expense").
		WithReportableDetails(map[string]any{"document_type": t}).
		Mark(ierr.ErrValidation)
}

// DefaultPrefix returns the legacy prefix used when no prefix setting or
// format row exists for the document type.
func (t DocumentType) DefaultPrefix() string {
	switch t {
	case DocumentTypeInvoice:
		return "INV-"
	case DocumentTypeEstimate:
		return "EST-"
	case DocumentTypeReceipt:
		return "REC-"
	case DocumentTypeProposal:
		return "PROP-"
	case DocumentTypeExpense:
		return "EXP-"
	}
	return "DOC-"
}

// Legacy settings keys for a document type, kept compatible with the
// original key/value counter rows.
func (t DocumentType) PrefixKey() string {
	return string(t) + "_prefix"
}

func (t DocumentType) NextKey() string {
	return string(t) + "_next"
}

// Document numbering constants shared by the legacy and formatted paths.
const (
	LegacyNumberPadding    = 6
	DefaultNumberPadding   = 6
	DefaultNumberSeparator = "-"
	MinNumberPadding       = 2
	MaxNumberPadding       = 8
)
