package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/attendance"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

func errCheckOutBeforeCheckIn() error {
	return ierr.NewError("check out before check in").
		WithHint("Check out time must be after check in time").
		Mark(ierr.ErrValidation)
}

type CreateAttendanceRequest struct {
	EmployeeID       string                 `json:"employee_id" validate:"required"`
	Date             time.Time              `json:"date" validate:"required"`
	CheckIn          *time.Time             `json:"check_in,omitempty"`
	CheckOut         *time.Time             `json:"check_out,omitempty"`
	AttendanceStatus types.AttendanceStatus `json:"attendance_status" validate:"omitempty"`
	Notes            string                 `json:"notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.AttendanceStatus != "" {
		if err := r.AttendanceStatus.Validate(); err != nil {
			return err
		}
	}
	if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
		return errCheckOutBeforeCheckIn()
	}
	return nil
}

func (r *CreateAttendanceRequest) ToAttendance(ctx context.Context) *attendance.Attendance {
	status := r.AttendanceStatus
	if status == "" {
		status = types.AttendanceStatusPresent
	}
	return &attendance.Attendance{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ATTENDANCE),
		EmployeeID:       r.EmployeeID,
		Date:             r.Date,
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		AttendanceStatus: status,
		Notes:            r.Notes,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAttendanceRequest struct {
	CheckIn          *time.Time              `json:"check_in,omitempty"`
	CheckOut         *time.Time              `json:"check_out,omitempty"`
	AttendanceStatus *types.AttendanceStatus `json:"attendance_status,omitempty"`
	Notes            *string                 `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	if r.AttendanceStatus != nil {
		if err := r.AttendanceStatus.Validate(); err != nil {
			return err
		}
	}
	if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
		return errCheckOutBeforeCheckIn()
	}
	return nil
}

func (r *UpdateAttendanceRequest) Apply(a *attendance.Attendance) {
	if r.CheckIn != nil {
		a.CheckIn = r.CheckIn
	}
	if r.CheckOut != nil {
		a.CheckOut = r.CheckOut
	}
	if r.AttendanceStatus != nil {
		a.AttendanceStatus = *r.AttendanceStatus
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
}

type AttendanceResponse struct {
	*attendance.Attendance

	// HoursWorked is derived from check in and check out, zero when
	// either is missing.
	HoursWorked float64 `json:"hours_worked"`
}

type ListAttendanceResponse = types.ListResponse[*AttendanceResponse]

func NewAttendanceResponse(a *attendance.Attendance) *AttendanceResponse {
	if a == nil {
		return nil
	}
	resp := &AttendanceResponse{Attendance: a}
	if a.CheckIn != nil && a.CheckOut != nil {
		resp.HoursWorked = a.CheckOut.Sub(*a.CheckIn).Hours()
	}
	return resp
}

type AttendanceFilter struct {
	types.QueryFilter
	EmployeeID *string    `json:"employee_id,omitempty" form:"employee_id"`
	From       *time.Time `json:"from,omitempty" form:"from"`
	To         *time.Time `json:"to,omitempty" form:"to"`
}
