package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateInvoiceRequest struct {
	ClientID       string              `json:"client_id" validate:"required"`
	Title          string              `json:"title" validate:"required,max=255"`
	Status         types.InvoiceStatus `json:"invoice_status" validate:"omitempty"`
	IssueDate      time.Time           `json:"issue_date" validate:"required"`
	DueDate        time.Time           `json:"due_date" validate:"required"`
	Subtotal       int64               `json:"subtotal" validate:"min=0"`
	TaxAmount      int64               `json:"tax_amount" validate:"min=0"`
	DiscountAmount int64               `json:"discount_amount" validate:"min=0"`
	Notes          string              `json:"notes"`
	Terms          string              `json:"terms"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.DueDate.Before(r.IssueDate) {
		return ierr.NewError("due date before issue date").
			WithHint("Due date must not be before the issue date").
			Mark(ierr.ErrValidation)
	}
	if r.DiscountAmount > r.Subtotal+r.TaxAmount {
		return ierr.NewError("discount exceeds invoice amount").
			WithHint("Discount cannot exceed subtotal plus tax").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToInvoice builds the invoice; the caller assigns the document number.
func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	status := r.Status
	if status == "" {
		status = types.InvoiceStatusDraft
	}
	return &invoice.Invoice{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:       r.ClientID,
		Title:          r.Title,
		InvoiceStatus:  status,
		IssueDate:      r.IssueDate,
		DueDate:        r.DueDate,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		DiscountAmount: r.DiscountAmount,
		Total:          r.Subtotal + r.TaxAmount - r.DiscountAmount,
		Notes:          r.Notes,
		Terms:          r.Terms,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type UpdateInvoiceRequest struct {
	ClientID       *string              `json:"client_id,omitempty"`
	Title          *string              `json:"title,omitempty" validate:"omitempty,max=255"`
	Status         *types.InvoiceStatus `json:"invoice_status,omitempty"`
	IssueDate      *time.Time           `json:"issue_date,omitempty"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	Subtotal       *int64               `json:"subtotal,omitempty" validate:"omitempty,min=0"`
	TaxAmount      *int64               `json:"tax_amount,omitempty" validate:"omitempty,min=0"`
	DiscountAmount *int64               `json:"discount_amount,omitempty" validate:"omitempty,min=0"`
	Notes          *string              `json:"notes,omitempty"`
	Terms          *string              `json:"terms,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != nil {
		return r.Status.Validate()
	}
	return nil
}

// Apply copies the provided fields and recomputes the total when any
// amount changed.
func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) {
	if r.ClientID != nil {
		inv.ClientID = *r.ClientID
	}
	if r.Title != nil {
		inv.Title = *r.Title
	}
	if r.Status != nil {
		inv.InvoiceStatus = *r.Status
	}
	if r.IssueDate != nil {
		inv.IssueDate = *r.IssueDate
	}
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	if r.Subtotal != nil {
		inv.Subtotal = *r.Subtotal
	}
	if r.TaxAmount != nil {
		inv.TaxAmount = *r.TaxAmount
	}
	if r.DiscountAmount != nil {
		inv.DiscountAmount = *r.DiscountAmount
	}
	if r.Subtotal != nil || r.TaxAmount != nil || r.DiscountAmount != nil {
		inv.Total = inv.Subtotal + inv.TaxAmount - inv.DiscountAmount
	}
	if r.Notes != nil {
		inv.Notes = *r.Notes
	}
	if r.Terms != nil {
		inv.Terms = *r.Terms
	}
}

type InvoiceResponse struct {
	*invoice.Invoice

	// Outstanding is the unpaid balance in cents
	Outstanding int64 `json:"outstanding"`
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{Invoice: inv, Outstanding: inv.Outstanding()}
}

type InvoiceFilter struct {
	types.QueryFilter
	ClientID *string              `json:"client_id,omitempty" form:"client_id"`
	Status   *types.InvoiceStatus `json:"invoice_status,omitempty" form:"invoice_status"`
}

func (f *InvoiceFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
