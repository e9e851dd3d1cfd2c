package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/expense"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ExpenseService manages business spending and its approval flow.
type ExpenseService interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context, filter *dto.ExpenseFilter) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id string) error

	ApproveExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	RejectExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	MarkExpensePaid(ctx context.Context, id string) (*dto.ExpenseResponse, error)
}

type expenseService struct {
	ServiceParams
	settings SettingsService
}

func NewExpenseService(params ServiceParams, settings SettingsService) ExpenseService {
	return &expenseService{ServiceParams: params, settings: settings}
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToExpense(ctx)

	number, err := s.settings.GenerateDocumentNumber(ctx, types.DocumentTypeExpense)
	if err != nil {
		return nil, err
	}
	e.ExpenseNumber = number

	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "expense", e.ID,
		fmt.Sprintf("created expense %s", e.ExpenseNumber))

	return dto.NewExpenseResponse(e), nil
}

func (s *expenseService) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewExpenseResponse(e), nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter *dto.ExpenseFilter) (*dto.ListExpensesResponse, error) {
	if filter == nil {
		filter = &dto.ExpenseFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var expenses []*expense.Expense
	var err error
	if filter.Status != nil {
		expenses, err = s.ExpenseRepo.ListByStatus(ctx, *filter.Status, &filter.QueryFilter)
	} else {
		expenses, err = s.ExpenseRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.ExpenseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(expenses, func(e *expense.Expense, _ int) *dto.ExpenseResponse {
		return dto.NewExpenseResponse(e)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Approved and paid expenses are frozen.
	if e.ExpenseStatus == types.ExpenseStatusApproved || e.ExpenseStatus == types.ExpenseStatusPaid {
		return nil, ierr.NewError("expense already approved").
			WithHint("Approved expenses cannot be edited").
			Mark(ierr.ErrInvalidOperation)
	}

	req.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	e.UpdatedBy = types.GetUserID(ctx)

	if err := s.ExpenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "expense", e.ID,
		fmt.Sprintf("updated expense %s", e.ExpenseNumber))

	return dto.NewExpenseResponse(e), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.ExpenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "expense", id, "deleted expense")
	return nil
}

func (s *expenseService) ApproveExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return s.transition(ctx, id, types.ExpenseStatusPending, types.ExpenseStatusApproved, "approved")
}

func (s *expenseService) RejectExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return s.transition(ctx, id, types.ExpenseStatusPending, types.ExpenseStatusRejected, "rejected")
}

func (s *expenseService) MarkExpensePaid(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return s.transition(ctx, id, types.ExpenseStatusApproved, types.ExpenseStatusPaid, "paid")
}

func (s *expenseService) transition(ctx context.Context, id string, from, to types.ExpenseStatus, action string) (*dto.ExpenseResponse, error) {
	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.ExpenseStatus != from {
		return nil, ierr.NewErrorf("expense is %s", e.ExpenseStatus).
			WithHintf("Only %s expenses can be %s", from, action).
			WithReportableDetails(map[string]any{"expense_status": e.ExpenseStatus}).
			Mark(ierr.ErrInvalidOperation)
	}

	e.ExpenseStatus = to
	e.UpdatedAt = time.Now().UTC()
	e.UpdatedBy = types.GetUserID(ctx)

	if err := s.ExpenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, action, "expense", e.ID,
		fmt.Sprintf("%s expense %s", action, e.ExpenseNumber))

	return dto.NewExpenseResponse(e), nil
}
