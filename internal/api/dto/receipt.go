package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/receipt"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateReceiptRequest struct {
	ClientID      string              `json:"client_id" validate:"required"`
	PaymentID     *string             `json:"payment_id,omitempty"`
	Amount        int64               `json:"amount" validate:"required,min=1"`
	PaymentMethod types.PaymentMethod `json:"payment_method" validate:"required"`
	ReceiptDate   time.Time           `json:"receipt_date" validate:"required"`
	Notes         string              `json:"notes"`
}

func (r *CreateReceiptRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}

// ToReceipt builds the receipt; the caller assigns the document number.
func (r *CreateReceiptRequest) ToReceipt(ctx context.Context) *receipt.Receipt {
	return &receipt.Receipt{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RECEIPT),
		ClientID:      r.ClientID,
		PaymentID:     r.PaymentID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ReceiptDate:   r.ReceiptDate,
		Notes:         r.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type ReceiptResponse struct {
	*receipt.Receipt
}

type ListReceiptsResponse = types.ListResponse[*ReceiptResponse]

func NewReceiptResponse(rec *receipt.Receipt) *ReceiptResponse {
	if rec == nil {
		return nil
	}
	return &ReceiptResponse{Receipt: rec}
}

type ReceiptFilter struct {
	types.QueryFilter
	ClientID *string `json:"client_id,omitempty" form:"client_id"`
}

func (f *ReceiptFilter) Validate() error {
	return f.QueryFilter.Validate()
}
