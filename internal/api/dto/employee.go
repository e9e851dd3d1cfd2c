package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/employee"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateEmployeeRequest struct {
	FirstName      string     `json:"first_name" validate:"required,max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	Email          string     `json:"email" validate:"required,email,max=255"`
	Phone          string     `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	HireDate       time.Time  `json:"hire_date" validate:"required"`
	Department     string     `json:"department" validate:"omitempty,max=100"`
	Position       string     `json:"position" validate:"omitempty,max=100"`
	Salary         int64      `json:"salary" validate:"min=0"`
	EmploymentType string     `json:"employment_type" validate:"omitempty,max=50"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateEmployeeRequest) ToEmployee(ctx context.Context) *employee.Employee {
	employmentType := r.EmploymentType
	if employmentType == "" {
		employmentType = "full_time"
	}
	return &employee.Employee{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EMPLOYEE),
		EmployeeNumber:   types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_EMPLOYEE),
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		DateOfBirth:      r.DateOfBirth,
		HireDate:         r.HireDate,
		Department:       r.Department,
		Position:         r.Position,
		Salary:           r.Salary,
		EmploymentType:   employmentType,
		EmploymentStatus: types.EmploymentStatusActive,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}

type UpdateEmployeeRequest struct {
	FirstName        *string                 `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName         *string                 `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email            *string                 `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone            *string                 `json:"phone,omitempty" validate:"omitempty,max=50"`
	DateOfBirth      *time.Time              `json:"date_of_birth,omitempty"`
	HireDate         *time.Time              `json:"hire_date,omitempty"`
	Department       *string                 `json:"department,omitempty" validate:"omitempty,max=100"`
	Position         *string                 `json:"position,omitempty" validate:"omitempty,max=100"`
	Salary           *int64                  `json:"salary,omitempty" validate:"omitempty,min=0"`
	EmploymentType   *string                 `json:"employment_type,omitempty" validate:"omitempty,max=50"`
	EmploymentStatus *types.EmploymentStatus `json:"employment_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.EmploymentStatus != nil {
		return r.EmploymentStatus.Validate()
	}
	return nil
}

func (r *UpdateEmployeeRequest) Apply(e *employee.Employee) {
	if r.FirstName != nil {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		e.LastName = *r.LastName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = *r.Phone
	}
	if r.DateOfBirth != nil {
		e.DateOfBirth = r.DateOfBirth
	}
	if r.HireDate != nil {
		e.HireDate = *r.HireDate
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.EmploymentType != nil {
		e.EmploymentType = *r.EmploymentType
	}
	if r.EmploymentStatus != nil {
		e.EmploymentStatus = *r.EmploymentStatus
	}
}

type EmployeeResponse struct {
	*employee.Employee

	FullName string `json:"full_name"`
}

type ListEmployeesResponse = types.ListResponse[*EmployeeResponse]

func NewEmployeeResponse(e *employee.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{Employee: e, FullName: e.FullName()}
}

type EmployeeFilter struct {
	types.QueryFilter
	Department *string `json:"department,omitempty" form:"department"`
}
