package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/attendance"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// AttendanceService tracks daily attendance records.
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (*dto.AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter *dto.AttendanceFilter) (*dto.ListAttendanceResponse, error)
	UpdateAttendance(ctx context.Context, id string, req dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}

type attendanceService struct {
	ServiceParams
}

func NewAttendanceService(params ServiceParams) AttendanceService {
	return &attendanceService{ServiceParams: params}
}

func (s *attendanceService) CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	a := req.ToAttendance(ctx)
	if err := s.AttendanceRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "attendance", a.ID,
		fmt.Sprintf("recorded attendance for %s on %s", a.EmployeeID, a.Date.Format("2006-01-02")))

	return dto.NewAttendanceResponse(a), nil
}

func (s *attendanceService) GetAttendance(ctx context.Context, id string) (*dto.AttendanceResponse, error) {
	a, err := s.AttendanceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAttendanceResponse(a), nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, filter *dto.AttendanceFilter) (*dto.ListAttendanceResponse, error) {
	if filter == nil {
		filter = &dto.AttendanceFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var records []*attendance.Attendance
	var err error
	switch {
	case filter.EmployeeID != nil:
		records, err = s.AttendanceRepo.ListByEmployee(ctx, *filter.EmployeeID, &filter.QueryFilter)
	case filter.From != nil && filter.To != nil:
		records, err = s.AttendanceRepo.ListByDateRange(ctx, *filter.From, *filter.To, &filter.QueryFilter)
	default:
		records, err = s.AttendanceRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.AttendanceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(records, func(a *attendance.Attendance, _ int) *dto.AttendanceResponse {
		return dto.NewAttendanceResponse(a)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, id string, req dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AttendanceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(a)
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = types.GetUserID(ctx)

	if err := s.AttendanceRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	return dto.NewAttendanceResponse(a), nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, id string) error {
	return s.AttendanceRepo.Delete(ctx, id)
}
