package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ExpenseService
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *ExpenseServiceSuite) setupService() {
	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		ExpenseRepo:   s.GetStores().ExpenseRepo,
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	}
	s.service = NewExpenseService(params, NewSettingsService(params))
}

func (s *ExpenseServiceSuite) createExpense() *dto.ExpenseResponse {
	resp, err := s.service.CreateExpense(s.GetContext(), dto.CreateExpenseRequest{
		Category:      "office",
		Vendor:        "Stationery World",
		Amount:        12000,
		ExpenseDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.NoError(err)
	return resp
}

func (s *ExpenseServiceSuite) TestCreateExpense() {
	resp := s.createExpense()
	s.Equal("EXP-000001", resp.ExpenseNumber)
	s.Equal(types.ExpenseStatusPending, resp.ExpenseStatus)
}

func (s *ExpenseServiceSuite) TestApprovalFlow() {
	created := s.createExpense()

	approved, err := s.service.ApproveExpense(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.ExpenseStatusApproved, approved.ExpenseStatus)

	paid, err := s.service.MarkExpensePaid(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.ExpenseStatusPaid, paid.ExpenseStatus)
}

func (s *ExpenseServiceSuite) TestRejectOnlyFromPending() {
	created := s.createExpense()

	_, err := s.service.ApproveExpense(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.RejectExpense(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ExpenseServiceSuite) TestMarkPaidRequiresApproval() {
	created := s.createExpense()

	_, err := s.service.MarkExpensePaid(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ExpenseServiceSuite) TestUpdateApprovedExpenseRejected() {
	created := s.createExpense()

	_, err := s.service.ApproveExpense(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.UpdateExpense(s.GetContext(), created.ID, dto.UpdateExpenseRequest{
		Amount: lo.ToPtr(int64(9999)),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ExpenseServiceSuite) TestUpdatePendingExpenseSparse() {
	created := s.createExpense()

	updated, err := s.service.UpdateExpense(s.GetContext(), created.ID, dto.UpdateExpenseRequest{
		Amount: lo.ToPtr(int64(15000)),
	})
	s.NoError(err)
	s.Equal(int64(15000), updated.Amount)
	s.Equal("office", updated.Category)
}

func (s *ExpenseServiceSuite) TestListExpensesByStatus() {
	first := s.createExpense()
	s.createExpense()

	_, err := s.service.ApproveExpense(s.GetContext(), first.ID)
	s.NoError(err)

	resp, err := s.service.ListExpenses(s.GetContext(), &dto.ExpenseFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		Status:      lo.ToPtr(types.ExpenseStatusApproved),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(2, resp.Pagination.Total)
}

func (s *ExpenseServiceSuite) TestDeleteExpense() {
	created := s.createExpense()

	s.NoError(s.service.DeleteExpense(s.GetContext(), created.ID))

	_, err := s.service.GetExpense(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
