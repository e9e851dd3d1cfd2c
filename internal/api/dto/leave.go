package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/leave"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string          `json:"employee_id" validate:"required"`
	LeaveType  types.LeaveType `json:"leave_type" validate:"required"`
	StartDate  time.Time       `json:"start_date" validate:"required"`
	EndDate    time.Time       `json:"end_date" validate:"required"`
	Reason     string          `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.LeaveType.Validate(); err != nil {
		return err
	}
	if r.EndDate.Before(r.StartDate) {
		return ierr.NewError("leave end date before start date").
			WithHint("End date must be on or after start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateLeaveRequest) ToLeave(ctx context.Context) *leave.Leave {
	days := int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	return &leave.Leave{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAVE),
		EmployeeID:  r.EmployeeID,
		LeaveType:   r.LeaveType,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Days:        days,
		Reason:      r.Reason,
		LeaveStatus: types.LeaveStatusPending,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateLeaveRequest struct {
	LeaveType *types.LeaveType `json:"leave_type,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
	Reason    *string          `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	if r.LeaveType != nil {
		return r.LeaveType.Validate()
	}
	return nil
}

func (r *UpdateLeaveRequest) Apply(l *leave.Leave) {
	if r.LeaveType != nil {
		l.LeaveType = *r.LeaveType
	}
	if r.StartDate != nil {
		l.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		l.EndDate = *r.EndDate
	}
	if r.Reason != nil {
		l.Reason = *r.Reason
	}
	if r.StartDate != nil || r.EndDate != nil {
		l.Days = int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
	}
}

type LeaveResponse struct {
	*leave.Leave
}

type ListLeaveResponse = types.ListResponse[*LeaveResponse]

func NewLeaveResponse(l *leave.Leave) *LeaveResponse {
	if l == nil {
		return nil
	}
	return &LeaveResponse{Leave: l}
}

type LeaveFilter struct {
	types.QueryFilter
	EmployeeID  *string            `json:"employee_id,omitempty" form:"employee_id"`
	LeaveStatus *types.LeaveStatus `json:"leave_status,omitempty" form:"leave_status"`
}

func (f *LeaveFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.LeaveStatus != nil {
		return f.LeaveStatus.Validate()
	}
	return nil
}
