package dto

import (
	"context"

	catalog "github.com/bizledger/bizledger/internal/domain/service"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateServiceRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	HourlyRate  int64  `json:"hourly_rate" validate:"min=0"`
	FixedPrice  int64  `json:"fixed_price" validate:"min=0"`
	Unit        string `json:"unit" validate:"omitempty,max=50"`
	TaxRate     int    `json:"tax_rate" validate:"min=0,max=10000"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r *CreateServiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateServiceRequest) ToService(ctx context.Context) *catalog.Service {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &catalog.Service{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SERVICE),
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		HourlyRate:  r.HourlyRate,
		FixedPrice:  r.FixedPrice,
		Unit:        r.Unit,
		TaxRate:     r.TaxRate,
		IsActive:    active,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	HourlyRate  *int64  `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	FixedPrice  *int64  `json:"fixed_price,omitempty" validate:"omitempty,min=0"`
	Unit        *string `json:"unit,omitempty" validate:"omitempty,max=50"`
	TaxRate     *int    `json:"tax_rate,omitempty" validate:"omitempty,min=0,max=10000"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateServiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateServiceRequest) Apply(s *catalog.Service) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.Category != nil {
		s.Category = *r.Category
	}
	if r.HourlyRate != nil {
		s.HourlyRate = *r.HourlyRate
	}
	if r.FixedPrice != nil {
		s.FixedPrice = *r.FixedPrice
	}
	if r.Unit != nil {
		s.Unit = *r.Unit
	}
	if r.TaxRate != nil {
		s.TaxRate = *r.TaxRate
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

type ServiceResponse struct {
	*catalog.Service
}

type ListServicesResponse = types.ListResponse[*ServiceResponse]

func NewServiceResponse(s *catalog.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{Service: s}
}
