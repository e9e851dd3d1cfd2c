package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusHalfDay AttendanceStatus = "half_day"
	AttendanceStatusLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) Validate() error {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate,
		AttendanceStatusHalfDay, AttendanceStatusLeave:
		return nil
	}
	return ierr.NewError("invalid attendance status").
		WithHint("Attendance status must be one of present, absent, late, half_day, leave").
		Mark(ierr.ErrValidation)
}

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
	LeaveTypeOther     LeaveType = "other"
)

func (t LeaveType) Validate() error {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeUnpaid, LeaveTypeOther:
		return nil
	}
	return ierr.NewError("invalid leave type").
		WithHint("Leave type must be one of annual, sick, maternity, paternity, unpaid, other").
		Mark(ierr.ErrValidation)
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

func (s LeaveStatus) Validate() error {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return nil
	}
	return ierr.NewError("invalid leave status").
		WithHint("Leave status must be one of pending, approved, rejected, cancelled").
		Mark(ierr.ErrValidation)
}

type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

func (s PayrollStatus) Validate() error {
	switch s {
	case PayrollStatusDraft, PayrollStatusProcessed, PayrollStatusPaid:
		return nil
	}
	return ierr.NewError("invalid payroll status").
		WithHint("Payroll status must be one of draft, processed, paid").
		Mark(ierr.ErrValidation)
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

func (s EmploymentStatus) Validate() error {
	switch s {
	case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		return nil
	}
	return ierr.NewError("invalid employment status").
		WithHint("Employment status must be one of active, on_leave, terminated").
		Mark(ierr.ErrValidation)
}
