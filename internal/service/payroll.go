package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/payroll"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// PayrollService manages pay run entries. Entries move draft ->
// processed -> paid and amounts are frozen once processed.
type PayrollService interface {
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest) (*dto.PayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (*dto.PayrollResponse, error)
	ListPayroll(ctx context.Context, filter *dto.PayrollFilter) (*dto.ListPayrollResponse, error)
	UpdatePayroll(ctx context.Context, id string, req dto.UpdatePayrollRequest) (*dto.PayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error
	ProcessPayroll(ctx context.Context, id string) (*dto.PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (*dto.PayrollResponse, error)
}

type payrollService struct {
	ServiceParams
}

func NewPayrollService(params ServiceParams) PayrollService {
	return &payrollService{ServiceParams: params}
}

func (s *payrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest) (*dto.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepo.Get(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	p := req.ToPayroll(ctx)
	if p.BasicSalary == 0 {
		p.BasicSalary = emp.Salary
		p.ComputeNet()
	}

	if err := s.PayrollRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "payroll", p.ID,
		fmt.Sprintf("created payroll entry for %s", emp.FullName()))

	return dto.NewPayrollResponse(p), nil
}

func (s *payrollService) GetPayroll(ctx context.Context, id string) (*dto.PayrollResponse, error) {
	p, err := s.PayrollRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPayrollResponse(p), nil
}

func (s *payrollService) ListPayroll(ctx context.Context, filter *dto.PayrollFilter) (*dto.ListPayrollResponse, error) {
	if filter == nil {
		filter = &dto.PayrollFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var entries []*payroll.Payroll
	var err error
	switch {
	case filter.EmployeeID != nil:
		entries, err = s.PayrollRepo.ListByEmployee(ctx, *filter.EmployeeID, &filter.QueryFilter)
	case filter.PayrollStatus != nil:
		entries, err = s.PayrollRepo.ListByStatus(ctx, *filter.PayrollStatus, &filter.QueryFilter)
	default:
		entries, err = s.PayrollRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.PayrollRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(entries, func(p *payroll.Payroll, _ int) *dto.PayrollResponse {
		return dto.NewPayrollResponse(p)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, id string, req dto.UpdatePayrollRequest) (*dto.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PayrollRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.PayrollStatus != types.PayrollStatusDraft {
		return nil, ierr.NewErrorf("payroll entry is %s", p.PayrollStatus).
			WithHint("Only draft payroll entries can be edited").
			Mark(ierr.ErrInvalidOperation)
	}

	req.Apply(p)
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.PayrollRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return dto.NewPayrollResponse(p), nil
}

func (s *payrollService) DeletePayroll(ctx context.Context, id string) error {
	p, err := s.PayrollRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if p.PayrollStatus == types.PayrollStatusPaid {
		return ierr.NewError("payroll entry already paid").
			WithHint("Paid payroll entries cannot be deleted").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.PayrollRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "payroll", id, "deleted payroll entry")
	return nil
}

func (s *payrollService) ProcessPayroll(ctx context.Context, id string) (*dto.PayrollResponse, error) {
	return s.transition(ctx, id, types.PayrollStatusDraft, types.PayrollStatusProcessed, "processed payroll entry")
}

func (s *payrollService) MarkPaid(ctx context.Context, id string) (*dto.PayrollResponse, error) {
	resp, err := s.transition(ctx, id, types.PayrollStatusProcessed, types.PayrollStatusPaid, "marked payroll entry paid")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resp.PaymentDate = &now
	if err := s.PayrollRepo.Update(ctx, resp.Payroll); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *payrollService) transition(ctx context.Context, id string, from, to types.PayrollStatus, detail string) (*dto.PayrollResponse, error) {
	p, err := s.PayrollRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.PayrollStatus != from {
		return nil, ierr.NewErrorf("payroll entry is %s, expected %s", p.PayrollStatus, from).
			WithHint("Payroll entries move draft, processed, paid in order").
			Mark(ierr.ErrInvalidOperation)
	}

	p.PayrollStatus = to
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.PayrollRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, string(to), "payroll", p.ID, detail)
	return dto.NewPayrollResponse(p), nil
}
