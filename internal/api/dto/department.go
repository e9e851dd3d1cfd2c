package dto

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/department"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id,omitempty"`
	Budget      int64   `json:"budget" validate:"min=0"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateDepartmentRequest) ToDepartment(ctx context.Context) *department.Department {
	return &department.Department{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DEPARTMENT),
		Name:        r.Name,
		Description: r.Description,
		ManagerID:   r.ManagerID,
		Budget:      r.Budget,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	Budget      *int64  `json:"budget,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateDepartmentRequest) Apply(d *department.Department) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Description != nil {
		d.Description = *r.Description
	}
	if r.ManagerID != nil {
		d.ManagerID = r.ManagerID
	}
	if r.Budget != nil {
		d.Budget = *r.Budget
	}
}

type DepartmentResponse struct {
	*department.Department
}

type ListDepartmentsResponse = types.ListResponse[*DepartmentResponse]

func NewDepartmentResponse(d *department.Department) *DepartmentResponse {
	if d == nil {
		return nil
	}
	return &DepartmentResponse{Department: d}
}
