package service

import (
	"testing"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/employee"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  AttendanceService
	testData struct {
		employee *employee.Employee
	}
}

func TestAttendanceService(t *testing.T) {
	suite.Run(t, new(AttendanceServiceSuite))
}

func (s *AttendanceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *AttendanceServiceSuite) setupService() {
	s.service = NewAttendanceService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		EmployeeRepo:   s.GetStores().EmployeeRepo,
		AttendanceRepo: s.GetStores().AttendanceRepo,
		ActivityRepo:   s.GetStores().ActivityRepo,
	})
}

func (s *AttendanceServiceSuite) setupTestData() {
	s.testData.employee = &employee.Employee{
		ID:               "emp_test_attendance",
		EmployeeNumber:   "EMP-1",
		FirstName:        "Grace",
		LastName:         "Wanjiku",
		Email:            "grace@acme.test",
		EmploymentStatus: types.EmploymentStatusActive,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().EmployeeRepo.Create(s.GetContext(), s.testData.employee))
}

func (s *AttendanceServiceSuite) TestCreateAttendance() {
	checkIn := s.GetNow().Truncate(24 * time.Hour).Add(8 * time.Hour)
	checkOut := checkIn.Add(9 * time.Hour)

	resp, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: s.testData.employee.ID,
		Date:       s.GetNow(),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	s.NoError(err)
	s.Equal(types.AttendanceStatusPresent, resp.AttendanceStatus)
	s.InDelta(9.0, resp.HoursWorked, 0.001)
}

func (s *AttendanceServiceSuite) TestCreateAttendanceUnknownEmployee() {
	_, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: "emp_missing",
		Date:       s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AttendanceServiceSuite) TestCreateAttendanceCheckOutBeforeCheckIn() {
	checkIn := s.GetNow()
	checkOut := checkIn.Add(-time.Hour)

	_, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: s.testData.employee.ID,
		Date:       s.GetNow(),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AttendanceServiceSuite) TestUpdateAttendanceStatus() {
	created, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: s.testData.employee.ID,
		Date:       s.GetNow(),
	})
	s.NoError(err)

	updated, err := s.service.UpdateAttendance(s.GetContext(), created.ID, dto.UpdateAttendanceRequest{
		AttendanceStatus: lo.ToPtr(types.AttendanceStatusHalfDay),
		Notes:            lo.ToPtr("left early"),
	})
	s.NoError(err)
	s.Equal(types.AttendanceStatusHalfDay, updated.AttendanceStatus)
	s.Equal("left early", updated.Notes)
}

func (s *AttendanceServiceSuite) TestListAttendanceByEmployee() {
	_, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: s.testData.employee.ID,
		Date:       s.GetNow(),
	})
	s.NoError(err)

	resp, err := s.service.ListAttendance(s.GetContext(), &dto.AttendanceFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		EmployeeID:  lo.ToPtr(s.testData.employee.ID),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
}

func (s *AttendanceServiceSuite) TestListAttendanceByDateRange() {
	day := s.GetNow().Truncate(24 * time.Hour)
	for _, offset := range []int{0, -1, -10} {
		_, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
			EmployeeID: s.testData.employee.ID,
			Date:       day.AddDate(0, 0, offset),
		})
		s.NoError(err)
	}

	resp, err := s.service.ListAttendance(s.GetContext(), &dto.AttendanceFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		From:        lo.ToPtr(day.AddDate(0, 0, -2)),
		To:          lo.ToPtr(day),
	})
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *AttendanceServiceSuite) TestDeleteAttendance() {
	created, err := s.service.CreateAttendance(s.GetContext(), dto.CreateAttendanceRequest{
		EmployeeID: s.testData.employee.ID,
		Date:       s.GetNow(),
	})
	s.NoError(err)

	s.NoError(s.service.DeleteAttendance(s.GetContext(), created.ID))

	_, err = s.service.GetAttendance(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
