package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/employee"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PayrollService
	testData struct {
		employee *employee.Employee
	}
}

func TestPayrollService(t *testing.T) {
	suite.Run(t, new(PayrollServiceSuite))
}

func (s *PayrollServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *PayrollServiceSuite) setupService() {
	s.service = NewPayrollService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		EmployeeRepo: s.GetStores().EmployeeRepo,
		PayrollRepo:  s.GetStores().PayrollRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *PayrollServiceSuite) setupTestData() {
	s.testData.employee = &employee.Employee{
		ID:               "emp_test_payroll",
		EmployeeNumber:   "EMP-000001",
		FirstName:        "Jane",
		LastName:         "Wanjiku",
		Email:            "jane@company.test",
		HireDate:         s.GetNow().AddDate(-1, 0, 0),
		Position:         "Accountant",
		Salary:           250000,
		EmploymentStatus: types.EmploymentStatusActive,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().EmployeeRepo.Create(s.GetContext(), s.testData.employee))
}

func (s *PayrollServiceSuite) createPayrollRequest() dto.CreatePayrollRequest {
	return dto.CreatePayrollRequest{
		EmployeeID:     s.testData.employee.ID,
		PayPeriodStart: s.GetNow().AddDate(0, -1, 0),
		PayPeriodEnd:   s.GetNow(),
		BasicSalary:    250000,
		Allowances:     20000,
		Deductions:     5000,
		Tax:            45000,
	}
}

func (s *PayrollServiceSuite) TestCreatePayroll() {
	resp, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)
	s.NotNil(resp)
	s.Equal(types.PayrollStatusDraft, resp.PayrollStatus)
	s.Equal(int64(220000), resp.NetSalary)
	s.Nil(resp.PaymentDate)
}

func (s *PayrollServiceSuite) TestCreatePayrollDefaultsToEmployeeSalary() {
	req := s.createPayrollRequest()
	req.BasicSalary = 0
	req.Allowances = 0
	req.Deductions = 0
	req.Tax = 30000

	resp, err := s.service.CreatePayroll(s.GetContext(), req)
	s.NoError(err)
	s.Equal(s.testData.employee.Salary, resp.BasicSalary)
	s.Equal(int64(220000), resp.NetSalary)
}

func (s *PayrollServiceSuite) TestCreatePayrollUnknownEmployee() {
	req := s.createPayrollRequest()
	req.EmployeeID = "emp_missing"

	_, err := s.service.CreatePayroll(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PayrollServiceSuite) TestCreatePayrollPeriodEndBeforeStart() {
	req := s.createPayrollRequest()
	req.PayPeriodEnd = req.PayPeriodStart.AddDate(0, 0, -1)

	_, err := s.service.CreatePayroll(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PayrollServiceSuite) TestUpdateDraftPayroll() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	resp, err := s.service.UpdatePayroll(s.GetContext(), created.ID, dto.UpdatePayrollRequest{
		Allowances: lo.ToPtr(int64(50000)),
	})
	s.NoError(err)
	s.Equal(int64(50000), resp.Allowances)
	s.Equal(int64(250000), resp.NetSalary)
}

func (s *PayrollServiceSuite) TestUpdateProcessedPayrollBlocked() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	_, err = s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.UpdatePayroll(s.GetContext(), created.ID, dto.UpdatePayrollRequest{
		Allowances: lo.ToPtr(int64(50000)),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PayrollServiceSuite) TestLifecycleTransitions() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	processed, err := s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.PayrollStatusProcessed, processed.PayrollStatus)

	paid, err := s.service.MarkPaid(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.PayrollStatusPaid, paid.PayrollStatus)
	s.NotNil(paid.PaymentDate)
}

func (s *PayrollServiceSuite) TestMarkPaidRequiresProcessed() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	_, err = s.service.MarkPaid(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PayrollServiceSuite) TestProcessTwiceBlocked() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	_, err = s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PayrollServiceSuite) TestDeletePaidPayrollBlocked() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	_, err = s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.MarkPaid(s.GetContext(), created.ID)
	s.NoError(err)

	err = s.service.DeletePayroll(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PayrollServiceSuite) TestDeleteDraftPayroll() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	s.NoError(s.service.DeletePayroll(s.GetContext(), created.ID))

	_, err = s.service.GetPayroll(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PayrollServiceSuite) TestListPayrollByStatus() {
	created, err := s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)
	_, err = s.service.CreatePayroll(s.GetContext(), s.createPayrollRequest())
	s.NoError(err)

	_, err = s.service.ProcessPayroll(s.GetContext(), created.ID)
	s.NoError(err)

	resp, err := s.service.ListPayroll(s.GetContext(), &dto.PayrollFilter{
		QueryFilter:   *types.NewDefaultQueryFilter(),
		PayrollStatus: lo.ToPtr(types.PayrollStatusDraft),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
}
