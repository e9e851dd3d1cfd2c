package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

// InvoiceStatus is the business status of an invoice. All monetary
// amounts on invoices are integer minor units (cents).
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusPartial, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return nil
	}
	return ierr.NewError("invalid invoice status").
		WithHint("Invoice status must be one of draft, sent, paid, partial, overdue, cancelled").
		Mark(ierr.ErrValidation)
}

// EstimateStatus is the business status of an estimate.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusAccepted  EstimateStatus = "accepted"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusExpired   EstimateStatus = "expired"
	EstimateStatusConverted EstimateStatus = "converted"
)

func (s EstimateStatus) String() string {
	return string(s)
}

func (s EstimateStatus) Validate() error {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted,
		EstimateStatusRejected, EstimateStatusExpired, EstimateStatusConverted:
		return nil
	}
	return ierr.NewError("invalid estimate status").
		WithHint("Estimate status must be one of draft, sent, accepted, rejected, expired, converted").
		Mark(ierr.ErrValidation)
}
