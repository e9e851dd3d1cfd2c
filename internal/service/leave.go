package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/leave"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// LeaveService manages time off requests and their approval flow.
type LeaveService interface {
	CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (*dto.LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (*dto.LeaveResponse, error)
	ListLeave(ctx context.Context, filter *dto.LeaveFilter) (*dto.ListLeaveResponse, error)
	UpdateLeave(ctx context.Context, id string, req dto.UpdateLeaveRequest) (*dto.LeaveResponse, error)
	DeleteLeave(ctx context.Context, id string) error
	ApproveLeave(ctx context.Context, id string) (*dto.LeaveResponse, error)
	RejectLeave(ctx context.Context, id string) (*dto.LeaveResponse, error)
	CancelLeave(ctx context.Context, id string) (*dto.LeaveResponse, error)
}

type leaveService struct {
	ServiceParams
}

func NewLeaveService(params ServiceParams) LeaveService {
	return &leaveService{ServiceParams: params}
}

func (s *leaveService) CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepo.Get(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	l := req.ToLeave(ctx)
	if err := s.LeaveRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "leave", l.ID,
		fmt.Sprintf("requested %d days of %s leave for %s", l.Days, l.LeaveType, emp.FullName()))

	return dto.NewLeaveResponse(l), nil
}

func (s *leaveService) GetLeave(ctx context.Context, id string) (*dto.LeaveResponse, error) {
	l, err := s.LeaveRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLeaveResponse(l), nil
}

func (s *leaveService) ListLeave(ctx context.Context, filter *dto.LeaveFilter) (*dto.ListLeaveResponse, error) {
	if filter == nil {
		filter = &dto.LeaveFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var requests []*leave.Leave
	var err error
	switch {
	case filter.EmployeeID != nil:
		requests, err = s.LeaveRepo.ListByEmployee(ctx, *filter.EmployeeID, &filter.QueryFilter)
	case filter.LeaveStatus != nil:
		requests, err = s.LeaveRepo.ListByStatus(ctx, *filter.LeaveStatus, &filter.QueryFilter)
	default:
		requests, err = s.LeaveRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.LeaveRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(requests, func(l *leave.Leave, _ int) *dto.LeaveResponse {
		return dto.NewLeaveResponse(l)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *leaveService) UpdateLeave(ctx context.Context, id string, req dto.UpdateLeaveRequest) (*dto.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeaveRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.LeaveStatus != types.LeaveStatusPending {
		return nil, ierr.NewErrorf("leave request is %s", l.LeaveStatus).
			WithHint("Only pending leave requests can be edited").
			Mark(ierr.ErrInvalidOperation)
	}

	req.Apply(l)
	if l.EndDate.Before(l.StartDate) {
		return nil, ierr.NewError("leave end date before start date").
			WithHint("End date must be on or after start date").
			Mark(ierr.ErrValidation)
	}
	l.UpdatedAt = time.Now().UTC()
	l.UpdatedBy = types.GetUserID(ctx)

	if err := s.LeaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	return dto.NewLeaveResponse(l), nil
}

func (s *leaveService) DeleteLeave(ctx context.Context, id string) error {
	l, err := s.LeaveRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if l.LeaveStatus == types.LeaveStatusApproved {
		return ierr.NewError("leave request already approved").
			WithHint("Cancel the leave request instead of deleting it").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.LeaveRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "leave", id, "deleted leave request")
	return nil
}

func (s *leaveService) ApproveLeave(ctx context.Context, id string) (*dto.LeaveResponse, error) {
	return s.decide(ctx, id, types.LeaveStatusApproved, "approved leave request")
}

func (s *leaveService) RejectLeave(ctx context.Context, id string) (*dto.LeaveResponse, error) {
	return s.decide(ctx, id, types.LeaveStatusRejected, "rejected leave request")
}

// CancelLeave withdraws a pending or approved request.
func (s *leaveService) CancelLeave(ctx context.Context, id string) (*dto.LeaveResponse, error) {
	l, err := s.LeaveRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.LeaveStatus != types.LeaveStatusPending && l.LeaveStatus != types.LeaveStatusApproved {
		return nil, ierr.NewErrorf("leave request is %s", l.LeaveStatus).
			WithHint("Only pending or approved leave requests can be cancelled").
			Mark(ierr.ErrInvalidOperation)
	}

	l.LeaveStatus = types.LeaveStatusCancelled
	l.UpdatedAt = time.Now().UTC()
	l.UpdatedBy = types.GetUserID(ctx)

	if err := s.LeaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "cancel", "leave", l.ID, "cancelled leave request")
	return dto.NewLeaveResponse(l), nil
}

func (s *leaveService) decide(ctx context.Context, id string, decision types.LeaveStatus, detail string) (*dto.LeaveResponse, error) {
	l, err := s.LeaveRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.LeaveStatus != types.LeaveStatusPending {
		return nil, ierr.NewErrorf("leave request is %s", l.LeaveStatus).
			WithHint("Only pending leave requests can be approved or rejected").
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	l.LeaveStatus = decision
	l.ApprovedBy = lo.ToPtr(types.GetUserID(ctx))
	l.ApprovalDate = &now
	l.UpdatedAt = now
	l.UpdatedBy = types.GetUserID(ctx)

	if err := s.LeaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, string(decision), "leave", l.ID, detail)

	title := "Leave request approved"
	notificationType := types.NotificationTypeSuccess
	if decision == types.LeaveStatusRejected {
		title = "Leave request rejected"
		notificationType = types.NotificationTypeWarning
	}
	notifyUser(ctx, s.ServiceParams, l.CreatedBy, notificationType, title,
		fmt.Sprintf("Your %s leave request for %d days was %s", l.LeaveType, l.Days, decision),
		"leave", l.ID)

	return dto.NewLeaveResponse(l), nil
}
