package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/payroll"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreatePayrollRequest struct {
	EmployeeID     string    `json:"employee_id" validate:"required"`
	PayPeriodStart time.Time `json:"pay_period_start" validate:"required"`
	PayPeriodEnd   time.Time `json:"pay_period_end" validate:"required"`
	BasicSalary    int64     `json:"basic_salary" validate:"min=0"`
	Allowances     int64     `json:"allowances" validate:"min=0"`
	Deductions     int64     `json:"deductions" validate:"min=0"`
	Tax            int64     `json:"tax" validate:"min=0"`
}

func (r *CreatePayrollRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PayPeriodEnd.Before(r.PayPeriodStart) {
		return ierr.NewError("pay period end before start").
			WithHint("Pay period end must be on or after pay period start").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreatePayrollRequest) ToPayroll(ctx context.Context) *payroll.Payroll {
	p := &payroll.Payroll{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYROLL),
		EmployeeID:     r.EmployeeID,
		PayPeriodStart: r.PayPeriodStart,
		PayPeriodEnd:   r.PayPeriodEnd,
		BasicSalary:    r.BasicSalary,
		Allowances:     r.Allowances,
		Deductions:     r.Deductions,
		Tax:            r.Tax,
		PayrollStatus:  types.PayrollStatusDraft,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	p.ComputeNet()
	return p
}

type UpdatePayrollRequest struct {
	BasicSalary *int64 `json:"basic_salary,omitempty" validate:"omitempty,min=0"`
	Allowances  *int64 `json:"allowances,omitempty" validate:"omitempty,min=0"`
	Deductions  *int64 `json:"deductions,omitempty" validate:"omitempty,min=0"`
	Tax         *int64 `json:"tax,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdatePayrollRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdatePayrollRequest) Apply(p *payroll.Payroll) {
	if r.BasicSalary != nil {
		p.BasicSalary = *r.BasicSalary
	}
	if r.Allowances != nil {
		p.Allowances = *r.Allowances
	}
	if r.Deductions != nil {
		p.Deductions = *r.Deductions
	}
	if r.Tax != nil {
		p.Tax = *r.Tax
	}
	p.ComputeNet()
}

type PayrollResponse struct {
	*payroll.Payroll
}

type ListPayrollResponse = types.ListResponse[*PayrollResponse]

func NewPayrollResponse(p *payroll.Payroll) *PayrollResponse {
	if p == nil {
		return nil
	}
	return &PayrollResponse{Payroll: p}
}

type PayrollFilter struct {
	types.QueryFilter
	EmployeeID    *string              `json:"employee_id,omitempty" form:"employee_id"`
	PayrollStatus *types.PayrollStatus `json:"payroll_status,omitempty" form:"payroll_status"`
}

func (f *PayrollFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.PayrollStatus != nil {
		return f.PayrollStatus.Validate()
	}
	return nil
}
