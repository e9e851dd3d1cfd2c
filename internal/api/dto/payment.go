package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/payment"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreatePaymentRequest struct {
	InvoiceID       string              `json:"invoice_id" validate:"required"`
	Amount          int64               `json:"amount" validate:"required,min=1"`
	PaymentDate     time.Time           `json:"payment_date" validate:"required"`
	PaymentMethod   types.PaymentMethod `json:"payment_method" validate:"required"`
	ReferenceNumber string              `json:"reference_number" validate:"omitempty,max=100"`
	Notes           string              `json:"notes"`

	// IssueReceipt also creates a numbered receipt for the payment.
	IssueReceipt bool `json:"issue_receipt"`
}

func (r *CreatePaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}

// ToPayment builds the payment; the caller fills in the client from the
// invoice.
func (r *CreatePaymentRequest) ToPayment(ctx context.Context) *payment.Payment {
	return &payment.Payment{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:       r.InvoiceID,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		PaymentMethod:   r.PaymentMethod,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type PaymentResponse struct {
	*payment.Payment

	// Receipt is set when a receipt was issued with the payment.
	Receipt *ReceiptResponse `json:"receipt,omitempty"`
}

type ListPaymentsResponse = types.ListResponse[*PaymentResponse]

func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{Payment: p}
}

type PaymentFilter struct {
	types.QueryFilter
	InvoiceID *string `json:"invoice_id,omitempty" form:"invoice_id"`
	ClientID  *string `json:"client_id,omitempty" form:"client_id"`
}

func (f *PaymentFilter) Validate() error {
	return f.QueryFilter.Validate()
}
