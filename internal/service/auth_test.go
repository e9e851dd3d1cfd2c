package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/auth"
	"github.com/bizledger/bizledger/internal/domain/user"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  AuthService
	testData struct {
		user *user.User
	}
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *AuthServiceSuite) setupService() {
	s.service = NewAuthService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		Auth:         s.GetAuthProvider(),
		UserRepo:     s.GetStores().UserRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *AuthServiceSuite) setupTestData() {
	hash, err := auth.HashPassword("correct horse battery")
	s.NoError(err)

	// The account matches the user the test context is authenticated
	// as, so Me and ChangePassword operate on it.
	s.testData.user = &user.User{
		ID:           types.DefaultUserID,
		Email:        "admin@company.test",
		Name:         "Admin User",
		PasswordHash: hash,
		Role:         types.UserRoleAdmin,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().UserRepo.Create(s.GetContext(), s.testData.user))
}

func (s *AuthServiceSuite) TestLogin() {
	resp, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@company.test",
		Password: "correct horse battery",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(s.testData.user.ID, resp.User.ID)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@company.test",
		Password: "wrong password",
	})
	s.Error(err)
	s.True(ierr.Is(err, ierr.ErrUnauthorized))
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "nobody@company.test",
		Password: "correct horse battery",
	})
	s.Error(err)
	s.True(ierr.Is(err, ierr.ErrUnauthorized))
}

func (s *AuthServiceSuite) TestLoginTokenIsVerifiable() {
	resp, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@company.test",
		Password: "correct horse battery",
	})
	s.NoError(err)

	claims, err := s.GetAuthProvider().ValidateToken(s.GetContext(), resp.Token)
	s.NoError(err)
	s.Equal(s.testData.user.ID, claims.UserID)
	s.Equal(s.testData.user.TenantID, claims.TenantID)
	s.Equal(types.UserRoleAdmin, claims.Role)
}

func (s *AuthServiceSuite) TestMe() {
	resp, err := s.service.Me(s.GetContext())
	s.NoError(err)
	s.Equal("admin@company.test", resp.Email)
}

func (s *AuthServiceSuite) TestUpdateProfile() {
	resp, err := s.service.UpdateProfile(s.GetContext(), dto.UpdateProfileRequest{
		Name:  lo.ToPtr("Renamed Admin"),
		Phone: lo.ToPtr("+254700000000"),
	})
	s.NoError(err)
	s.Equal("Renamed Admin", resp.Name)
	s.Equal("+254700000000", resp.Phone)
}

func (s *AuthServiceSuite) TestChangePassword() {
	err := s.service.ChangePassword(s.GetContext(), dto.ChangePasswordRequest{
		CurrentPassword: "correct horse battery",
		NewPassword:     "new password 123",
	})
	s.NoError(err)

	_, err = s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@company.test",
		Password: "new password 123",
	})
	s.NoError(err)

	_, err = s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@company.test",
		Password: "correct horse battery",
	})
	s.Error(err)
}

func (s *AuthServiceSuite) TestChangePasswordWrongCurrent() {
	err := s.service.ChangePassword(s.GetContext(), dto.ChangePasswordRequest{
		CurrentPassword: "not my password",
		NewPassword:     "new password 123",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
