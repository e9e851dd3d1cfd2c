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

type DepartmentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DepartmentService
}

func TestDepartmentService(t *testing.T) {
	suite.Run(t, new(DepartmentServiceSuite))
}

func (s *DepartmentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *DepartmentServiceSuite) setupService() {
	s.service = NewDepartmentService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		EmployeeRepo:   s.GetStores().EmployeeRepo,
		DepartmentRepo: s.GetStores().DepartmentRepo,
		ActivityRepo:   s.GetStores().ActivityRepo,
	})
}

func (s *DepartmentServiceSuite) TestCreateDepartment() {
	resp, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name:   "Engineering",
		Budget: 50000000,
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Engineering", resp.Name)
}

func (s *DepartmentServiceSuite) TestCreateDepartmentDuplicateName() {
	_, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name: "Engineering",
	})
	s.NoError(err)

	_, err = s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name: "Engineering",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *DepartmentServiceSuite) TestCreateDepartmentUnknownManager() {
	_, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name:      "Engineering",
		ManagerID: lo.ToPtr("emp_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DepartmentServiceSuite) TestUpdateDepartmentSparse() {
	created, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name:   "Engineering",
		Budget: 50000000,
	})
	s.NoError(err)

	updated, err := s.service.UpdateDepartment(s.GetContext(), created.ID, dto.UpdateDepartmentRequest{
		Budget: lo.ToPtr(int64(60000000)),
	})
	s.NoError(err)
	s.Equal(int64(60000000), updated.Budget)
	s.Equal("Engineering", updated.Name)
}

func (s *DepartmentServiceSuite) TestDeleteDepartmentWithEmployees() {
	created, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name: "Engineering",
	})
	s.NoError(err)

	e := &employee.Employee{
		ID:               "emp_test_department",
		EmployeeNumber:   "EMP-1",
		FirstName:        "Grace",
		LastName:         "Wanjiku",
		Email:            "grace@acme.test",
		Department:       "Engineering",
		EmploymentStatus: types.EmploymentStatusActive,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().EmployeeRepo.Create(s.GetContext(), e))

	err = s.service.DeleteDepartment(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *DepartmentServiceSuite) TestDeleteEmptyDepartment() {
	created, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{
		Name: "Engineering",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteDepartment(s.GetContext(), created.ID))

	_, err = s.service.GetDepartment(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DepartmentServiceSuite) TestListDepartments() {
	_, err := s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{Name: "Engineering"})
	s.NoError(err)
	_, err = s.service.CreateDepartment(s.GetContext(), dto.CreateDepartmentRequest{Name: "Sales"})
	s.NoError(err)

	resp, err := s.service.ListDepartments(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}
