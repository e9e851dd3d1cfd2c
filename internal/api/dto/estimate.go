package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/estimate"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateEstimateRequest struct {
	ClientID       string               `json:"client_id" validate:"required"`
	Title          string               `json:"title" validate:"required,max=255"`
	Status         types.EstimateStatus `json:"estimate_status" validate:"omitempty"`
	IssueDate      time.Time            `json:"issue_date" validate:"required"`
	ExpiryDate     *time.Time           `json:"expiry_date,omitempty"`
	Subtotal       int64                `json:"subtotal" validate:"min=0"`
	TaxAmount      int64                `json:"tax_amount" validate:"min=0"`
	DiscountAmount int64                `json:"discount_amount" validate:"min=0"`
	Notes          string               `json:"notes"`
	Terms          string               `json:"terms"`
}

func (r *CreateEstimateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

// ToEstimate builds the estimate; the caller assigns the document number.
func (r *CreateEstimateRequest) ToEstimate(ctx context.Context) *estimate.Estimate {
	status := r.Status
	if status == "" {
		status = types.EstimateStatusDraft
	}
	return &estimate.Estimate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ESTIMATE),
		ClientID:       r.ClientID,
		Title:          r.Title,
		EstimateStatus: status,
		IssueDate:      r.IssueDate,
		ExpiryDate:     r.ExpiryDate,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		DiscountAmount: r.DiscountAmount,
		Total:          r.Subtotal + r.TaxAmount - r.DiscountAmount,
		Notes:          r.Notes,
		Terms:          r.Terms,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type UpdateEstimateRequest struct {
	ClientID       *string               `json:"client_id,omitempty"`
	Title          *string               `json:"title,omitempty" validate:"omitempty,max=255"`
	Status         *types.EstimateStatus `json:"estimate_status,omitempty"`
	IssueDate      *time.Time            `json:"issue_date,omitempty"`
	ExpiryDate     *time.Time            `json:"expiry_date,omitempty"`
	Subtotal       *int64                `json:"subtotal,omitempty" validate:"omitempty,min=0"`
	TaxAmount      *int64                `json:"tax_amount,omitempty" validate:"omitempty,min=0"`
	DiscountAmount *int64                `json:"discount_amount,omitempty" validate:"omitempty,min=0"`
	Notes          *string               `json:"notes,omitempty"`
	Terms          *string               `json:"terms,omitempty"`
}

func (r *UpdateEstimateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != nil {
		return r.Status.Validate()
	}
	return nil
}

func (r *UpdateEstimateRequest) Apply(e *estimate.Estimate) {
	if r.ClientID != nil {
		e.ClientID = *r.ClientID
	}
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Status != nil {
		e.EstimateStatus = *r.Status
	}
	if r.IssueDate != nil {
		e.IssueDate = *r.IssueDate
	}
	if r.ExpiryDate != nil {
		e.ExpiryDate = r.ExpiryDate
	}
	if r.Subtotal != nil {
		e.Subtotal = *r.Subtotal
	}
	if r.TaxAmount != nil {
		e.TaxAmount = *r.TaxAmount
	}
	if r.DiscountAmount != nil {
		e.DiscountAmount = *r.DiscountAmount
	}
	if r.Subtotal != nil || r.TaxAmount != nil || r.DiscountAmount != nil {
		e.Total = e.Subtotal + e.TaxAmount - e.DiscountAmount
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
	if r.Terms != nil {
		e.Terms = *r.Terms
	}
}

type EstimateResponse struct {
	*estimate.Estimate
}

type ListEstimatesResponse = types.ListResponse[*EstimateResponse]

func NewEstimateResponse(e *estimate.Estimate) *EstimateResponse {
	if e == nil {
		return nil
	}
	return &EstimateResponse{Estimate: e}
}

type EstimateFilter struct {
	types.QueryFilter
	ClientID *string               `json:"client_id,omitempty" form:"client_id"`
	Status   *types.EstimateStatus `json:"estimate_status,omitempty" form:"estimate_status"`
}

func (f *EstimateFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
