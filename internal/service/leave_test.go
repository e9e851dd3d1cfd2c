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

type LeaveServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  LeaveService
	testData struct {
		employee *employee.Employee
	}
}

func TestLeaveService(t *testing.T) {
	suite.Run(t, new(LeaveServiceSuite))
}

func (s *LeaveServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *LeaveServiceSuite) setupService() {
	s.service = NewLeaveService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		Cache:            s.GetCache(),
		EmployeeRepo:     s.GetStores().EmployeeRepo,
		LeaveRepo:        s.GetStores().LeaveRepo,
		NotificationRepo: s.GetStores().NotificationRepo,
		ActivityRepo:     s.GetStores().ActivityRepo,
	})
}

func (s *LeaveServiceSuite) setupTestData() {
	s.testData.employee = &employee.Employee{
		ID:               "emp_test_leave",
		EmployeeNumber:   "EMP-000001",
		FirstName:        "John",
		LastName:         "Otieno",
		Email:            "john@company.test",
		HireDate:         s.GetNow().AddDate(-2, 0, 0),
		Position:         "Engineer",
		Salary:           300000,
		EmploymentStatus: types.EmploymentStatusActive,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().EmployeeRepo.Create(s.GetContext(), s.testData.employee))
}

func (s *LeaveServiceSuite) createLeaveRequest(days int) dto.CreateLeaveRequest {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return dto.CreateLeaveRequest{
		EmployeeID: s.testData.employee.ID,
		LeaveType:  types.LeaveTypeAnnual,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		Reason:     "Family trip",
	}
}

func (s *LeaveServiceSuite) TestCreateLeaveComputesDays() {
	resp, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(5))
	s.NoError(err)
	s.Equal(5, resp.Days)
	s.Equal(types.LeaveStatusPending, resp.LeaveStatus)
	s.Nil(resp.ApprovedBy)
}

func (s *LeaveServiceSuite) TestCreateSingleDayLeave() {
	resp, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(1))
	s.NoError(err)
	s.Equal(1, resp.Days)
}

func (s *LeaveServiceSuite) TestCreateLeaveEndBeforeStart() {
	req := s.createLeaveRequest(5)
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := s.service.CreateLeave(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeaveServiceSuite) TestCreateLeaveInvalidType() {
	req := s.createLeaveRequest(3)
	req.LeaveType = types.LeaveType("sabbatical")

	_, err := s.service.CreateLeave(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeaveServiceSuite) TestCreateLeaveUnknownEmployee() {
	req := s.createLeaveRequest(3)
	req.EmployeeID = "emp_missing"

	_, err := s.service.CreateLeave(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *LeaveServiceSuite) TestApproveLeave() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	resp, err := s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LeaveStatusApproved, resp.LeaveStatus)
	s.NotNil(resp.ApprovedBy)
	s.Equal(types.DefaultUserID, *resp.ApprovedBy)
	s.NotNil(resp.ApprovalDate)
}

func (s *LeaveServiceSuite) TestRejectLeave() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	resp, err := s.service.RejectLeave(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LeaveStatusRejected, resp.LeaveStatus)
	s.NotNil(resp.ApprovedBy)
}

func (s *LeaveServiceSuite) TestDecisionNotifiesRequester() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)

	unread, err := s.GetStores().NotificationRepo.ListUnreadByUser(s.GetContext(), types.DefaultUserID)
	s.NoError(err)
	s.Len(unread, 1)
	s.Equal("Leave request approved", unread[0].Title)
	s.Equal("leave", unread[0].EntityType)
	s.NotNil(unread[0].EntityID)
	s.Equal(created.ID, *unread[0].EntityID)
}

func (s *LeaveServiceSuite) TestApproveNonPendingBlocked() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.RejectLeave(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *LeaveServiceSuite) TestCancelPendingLeave() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	resp, err := s.service.CancelLeave(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LeaveStatusCancelled, resp.LeaveStatus)
}

func (s *LeaveServiceSuite) TestCancelApprovedLeave() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)

	resp, err := s.service.CancelLeave(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LeaveStatusCancelled, resp.LeaveStatus)
}

func (s *LeaveServiceSuite) TestCancelRejectedLeaveBlocked() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.RejectLeave(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.CancelLeave(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *LeaveServiceSuite) TestUpdatePendingLeaveRecomputesDays() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	newEnd := created.StartDate.AddDate(0, 0, 9)
	resp, err := s.service.UpdateLeave(s.GetContext(), created.ID, dto.UpdateLeaveRequest{
		EndDate: &newEnd,
	})
	s.NoError(err)
	s.Equal(10, resp.Days)
}

func (s *LeaveServiceSuite) TestUpdateApprovedLeaveBlocked() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.UpdateLeave(s.GetContext(), created.ID, dto.UpdateLeaveRequest{
		Reason: lo.ToPtr("Changed my mind"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *LeaveServiceSuite) TestDeleteApprovedLeaveBlocked() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)

	err = s.service.DeleteLeave(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *LeaveServiceSuite) TestDeletePendingLeave() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)

	s.NoError(s.service.DeleteLeave(s.GetContext(), created.ID))

	_, err = s.service.GetLeave(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *LeaveServiceSuite) TestListLeaveByStatus() {
	created, err := s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(3))
	s.NoError(err)
	_, err = s.service.CreateLeave(s.GetContext(), s.createLeaveRequest(2))
	s.NoError(err)

	_, err = s.service.ApproveLeave(s.GetContext(), created.ID)
	s.NoError(err)

	resp, err := s.service.ListLeave(s.GetContext(), &dto.LeaveFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		LeaveStatus: lo.ToPtr(types.LeaveStatusPending),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
}
