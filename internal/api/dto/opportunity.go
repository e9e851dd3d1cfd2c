package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/opportunity"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateOpportunityRequest struct {
	Title             string                 `json:"title" validate:"required,max=255"`
	ClientID          *string                `json:"client_id,omitempty"`
	Stage             types.OpportunityStage `json:"stage" validate:"omitempty"`
	EstimatedValue    int64                  `json:"estimated_value" validate:"min=0"`
	Probability       int                    `json:"probability" validate:"min=0,max=100"`
	ExpectedCloseDate *time.Time             `json:"expected_close_date,omitempty"`
	Source            string                 `json:"source" validate:"omitempty,max=100"`
	AssignedTo        *string                `json:"assigned_to,omitempty"`
	Notes             string                 `json:"notes"`
}

func (r *CreateOpportunityRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Stage != "" {
		return r.Stage.Validate()
	}
	return nil
}

func (r *CreateOpportunityRequest) ToOpportunity(ctx context.Context) *opportunity.Opportunity {
	stage := r.Stage
	if stage == "" {
		stage = types.OpportunityStageLead
	}
	return &opportunity.Opportunity{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OPPORTUNITY),
		Title:             r.Title,
		ClientID:          r.ClientID,
		Stage:             stage,
		EstimatedValue:    r.EstimatedValue,
		Probability:       r.Probability,
		ExpectedCloseDate: r.ExpectedCloseDate,
		Source:            r.Source,
		AssignedTo:        r.AssignedTo,
		Notes:             r.Notes,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

type UpdateOpportunityRequest struct {
	Title             *string                 `json:"title,omitempty" validate:"omitempty,max=255"`
	ClientID          *string                 `json:"client_id,omitempty"`
	Stage             *types.OpportunityStage `json:"stage,omitempty"`
	EstimatedValue    *int64                  `json:"estimated_value,omitempty" validate:"omitempty,min=0"`
	Probability       *int                    `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time              `json:"expected_close_date,omitempty"`
	Source            *string                 `json:"source,omitempty" validate:"omitempty,max=100"`
	AssignedTo        *string                 `json:"assigned_to,omitempty"`
	Notes             *string                 `json:"notes,omitempty"`
}

func (r *UpdateOpportunityRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Stage != nil {
		return r.Stage.Validate()
	}
	return nil
}

func (r *UpdateOpportunityRequest) Apply(o *opportunity.Opportunity) {
	if r.Title != nil {
		o.Title = *r.Title
	}
	if r.ClientID != nil {
		o.ClientID = r.ClientID
	}
	if r.Stage != nil {
		o.Stage = *r.Stage
	}
	if r.EstimatedValue != nil {
		o.EstimatedValue = *r.EstimatedValue
	}
	if r.Probability != nil {
		o.Probability = *r.Probability
	}
	if r.ExpectedCloseDate != nil {
		o.ExpectedCloseDate = r.ExpectedCloseDate
	}
	if r.Source != nil {
		o.Source = *r.Source
	}
	if r.AssignedTo != nil {
		o.AssignedTo = r.AssignedTo
	}
	if r.Notes != nil {
		o.Notes = *r.Notes
	}
}

type OpportunityResponse struct {
	*opportunity.Opportunity

	// WeightedValue is estimated value scaled by probability, in cents
	WeightedValue int64 `json:"weighted_value"`
}

type ListOpportunitiesResponse = types.ListResponse[*OpportunityResponse]

func NewOpportunityResponse(o *opportunity.Opportunity) *OpportunityResponse {
	if o == nil {
		return nil
	}
	return &OpportunityResponse{
		Opportunity:   o,
		WeightedValue: o.EstimatedValue * int64(o.Probability) / 100,
	}
}

type OpportunityFilter struct {
	types.QueryFilter
	Stage    *types.OpportunityStage `json:"stage,omitempty" form:"stage"`
	ClientID *string                 `json:"client_id,omitempty" form:"client_id"`
}

func (f *OpportunityFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Stage != nil {
		return f.Stage.Validate()
	}
	return nil
}
