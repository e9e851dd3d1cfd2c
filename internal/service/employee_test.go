package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/department"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EmployeeService
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceSuite))
}

func (s *EmployeeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *EmployeeServiceSuite) setupService() {
	s.service = NewEmployeeService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		EmployeeRepo:   s.GetStores().EmployeeRepo,
		DepartmentRepo: s.GetStores().DepartmentRepo,
		ActivityRepo:   s.GetStores().ActivityRepo,
	})
}

func (s *EmployeeServiceSuite) setupTestData() {
	dept := &department.Department{
		ID:        "dept_test_engineering",
		Name:      "Engineering",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().DepartmentRepo.Create(s.GetContext(), dept))
}

func (s *EmployeeServiceSuite) createEmployeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:  "Grace",
		LastName:   "Wanjiku",
		Email:      "grace@acme.test",
		HireDate:   s.GetNow(),
		Department: "Engineering",
		Position:   "Developer",
		Salary:     8000000,
	}
}

func (s *EmployeeServiceSuite) TestCreateEmployee() {
	resp, err := s.service.CreateEmployee(s.GetContext(), s.createEmployeeRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.NotEmpty(resp.EmployeeNumber)
	s.Equal("Grace Wanjiku", resp.FullName)
	s.Equal(types.EmploymentStatusActive, resp.EmploymentStatus)
	s.Equal("full_time", resp.EmploymentType)
}

func (s *EmployeeServiceSuite) TestCreateEmployeeUnknownDepartment() {
	req := s.createEmployeeRequest()
	req.Department = "Astrology"

	_, err := s.service.CreateEmployee(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *EmployeeServiceSuite) TestUpdateEmployeeSparse() {
	created, err := s.service.CreateEmployee(s.GetContext(), s.createEmployeeRequest())
	s.NoError(err)

	updated, err := s.service.UpdateEmployee(s.GetContext(), created.ID, dto.UpdateEmployeeRequest{
		Position: lo.ToPtr("Senior Developer"),
		Salary:   lo.ToPtr(int64(9500000)),
	})
	s.NoError(err)
	s.Equal("Senior Developer", updated.Position)
	s.Equal(int64(9500000), updated.Salary)
	s.Equal("grace@acme.test", updated.Email)
}

func (s *EmployeeServiceSuite) TestListEmployeesByDepartment() {
	_, err := s.service.CreateEmployee(s.GetContext(), s.createEmployeeRequest())
	s.NoError(err)

	resp, err := s.service.ListEmployees(s.GetContext(), &dto.EmployeeFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		Department:  lo.ToPtr("Engineering"),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)

	resp, err = s.service.ListEmployees(s.GetContext(), &dto.EmployeeFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		Department:  lo.ToPtr("Sales"),
	})
	s.NoError(err)
	s.Empty(resp.Items)
}

func (s *EmployeeServiceSuite) TestDeleteEmployee() {
	created, err := s.service.CreateEmployee(s.GetContext(), s.createEmployeeRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteEmployee(s.GetContext(), created.ID))

	_, err = s.service.GetEmployee(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
