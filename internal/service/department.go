package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/department"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// DepartmentService manages organisational units.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context, filter *types.QueryFilter) (*dto.ListDepartmentsResponse, error)
	UpdateDepartment(ctx context.Context, id string, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type departmentService struct {
	ServiceParams
}

func NewDepartmentService(params ServiceParams) DepartmentService {
	return &departmentService{ServiceParams: params}
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.DepartmentRepo.GetByName(ctx, req.Name); err == nil && existing != nil {
		return nil, ierr.NewErrorf("department %s already exists", req.Name).
			WithHint("Department names must be unique").
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	if req.ManagerID != nil {
		if _, err := s.EmployeeRepo.Get(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	d := req.ToDepartment(ctx)
	if err := s.DepartmentRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "department", d.ID,
		fmt.Sprintf("created department %s", d.Name))

	return dto.NewDepartmentResponse(d), nil
}

func (s *departmentService) GetDepartment(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	d, err := s.DepartmentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDepartmentResponse(d), nil
}

func (s *departmentService) ListDepartments(ctx context.Context, filter *types.QueryFilter) (*dto.ListDepartmentsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	departments, err := s.DepartmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.DepartmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(departments, func(d *department.Department, _ int) *dto.DepartmentResponse {
		return dto.NewDepartmentResponse(d)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id string, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.DepartmentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ManagerID != nil {
		if _, err := s.EmployeeRepo.Get(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	req.Apply(d)
	d.UpdatedAt = time.Now().UTC()
	d.UpdatedBy = types.GetUserID(ctx)

	if err := s.DepartmentRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "department", d.ID,
		fmt.Sprintf("updated department %s", d.Name))

	return dto.NewDepartmentResponse(d), nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id string) error {
	d, err := s.DepartmentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	members, err := s.EmployeeRepo.ListByDepartment(ctx, d.Name, types.NewNoLimitQueryFilter())
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return ierr.NewErrorf("department %s has %d employees", d.Name, len(members)).
			WithHint("Reassign employees before deleting a department").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.DepartmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "department", id,
		fmt.Sprintf("deleted department %s", d.Name))
	return nil
}
