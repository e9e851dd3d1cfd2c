package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/auth"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type UserServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UserService
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *UserServiceSuite) setupService() {
	s.service = NewUserService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		Auth:         s.GetAuthProvider(),
		UserRepo:     s.GetStores().UserRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *UserServiceSuite) createUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    "staff@company.test",
		Name:     "Staff Member",
		Password: "a long password",
		Role:     types.UserRoleStaff,
	}
}

func (s *UserServiceSuite) TestCreateUser() {
	resp, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)
	s.Equal("staff@company.test", resp.Email)
	s.Equal(types.UserRoleStaff, resp.Role)
	s.NotEmpty(resp.PasswordHash)
	s.NotEqual("a long password", resp.PasswordHash)
	s.True(auth.CheckPassword(resp.PasswordHash, "a long password"))
}

func (s *UserServiceSuite) TestCreateUserDefaultRole() {
	req := s.createUserRequest()
	req.Role = ""

	resp, err := s.service.CreateUser(s.GetContext(), req)
	s.NoError(err)
	s.Equal(types.UserRoleUser, resp.Role)
}

func (s *UserServiceSuite) TestCreateUserDuplicateEmail() {
	_, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)

	_, err = s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *UserServiceSuite) TestCreateUserShortPassword() {
	req := s.createUserRequest()
	req.Password = "short"

	_, err := s.service.CreateUser(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *UserServiceSuite) TestUpdateUserRole() {
	created, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)

	resp, err := s.service.UpdateUser(s.GetContext(), created.ID, dto.UpdateUserRequest{
		Role: lo.ToPtr(types.UserRoleAccountant),
	})
	s.NoError(err)
	s.Equal(types.UserRoleAccountant, resp.Role)
}

func (s *UserServiceSuite) TestUpdateUserPassword() {
	created, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)

	resp, err := s.service.UpdateUser(s.GetContext(), created.ID, dto.UpdateUserRequest{
		Password: lo.ToPtr("another password"),
	})
	s.NoError(err)
	s.True(auth.CheckPassword(resp.PasswordHash, "another password"))
}

func (s *UserServiceSuite) TestDeleteUserIsSoftDelete() {
	created, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteUser(s.GetContext(), created.ID))

	_, err = s.service.GetUser(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// The email becomes available again once the account is deleted.
	_, err = s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)
}

func (s *UserServiceSuite) TestDeleteOwnAccountBlocked() {
	err := s.service.DeleteUser(s.GetContext(), types.DefaultUserID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *UserServiceSuite) TestListUsersExcludesDeleted() {
	created, err := s.service.CreateUser(s.GetContext(), s.createUserRequest())
	s.NoError(err)

	req := s.createUserRequest()
	req.Email = "other@company.test"
	_, err = s.service.CreateUser(s.GetContext(), req)
	s.NoError(err)

	s.NoError(s.service.DeleteUser(s.GetContext(), created.ID))

	resp, err := s.service.ListUsers(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("other@company.test", resp.Items[0].Email)
}
