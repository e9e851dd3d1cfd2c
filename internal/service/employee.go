package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/employee"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// EmployeeService manages staff records.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter *dto.EmployeeFilter) (*dto.ListEmployeesResponse, error)
	UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeService struct {
	ServiceParams
}

func NewEmployeeService(params ServiceParams) EmployeeService {
	return &employeeService{ServiceParams: params}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Department != "" {
		if _, err := s.DepartmentRepo.GetByName(ctx, req.Department); err != nil {
			if ierr.IsNotFound(err) {
				return nil, ierr.NewErrorf("department %s not found", req.Department).
					WithHint("Create the department before assigning employees to it").
					Mark(ierr.ErrValidation)
			}
			return nil, err
		}
	}

	e := req.ToEmployee(ctx)
	if err := s.EmployeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "employee", e.ID,
		fmt.Sprintf("created employee %s (%s)", e.FullName(), e.EmployeeNumber))

	return dto.NewEmployeeResponse(e), nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := s.EmployeeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(e), nil
}

func (s *employeeService) ListEmployees(ctx context.Context, filter *dto.EmployeeFilter) (*dto.ListEmployeesResponse, error) {
	if filter == nil {
		filter = &dto.EmployeeFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var employees []*employee.Employee
	var err error
	if filter.Department != nil {
		employees, err = s.EmployeeRepo.ListByDepartment(ctx, *filter.Department, &filter.QueryFilter)
	} else {
		employees, err = s.EmployeeRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.EmployeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(employees, func(e *employee.Employee, _ int) *dto.EmployeeResponse {
		return dto.NewEmployeeResponse(e)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.EmployeeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	e.UpdatedBy = types.GetUserID(ctx)

	if err := s.EmployeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "employee", e.ID,
		fmt.Sprintf("updated employee %s", e.FullName()))

	return dto.NewEmployeeResponse(e), nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.EmployeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "employee", id, "deleted employee")
	return nil
}
