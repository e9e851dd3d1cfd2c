package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/auth"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// AuthService handles sign-in and the current user's own profile.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, errInvalidCredentials()
	}

	token, err := s.Auth.IssueToken(u.ID, u.TenantID, u.Role)
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "login", "user", u.ID, "signed in")

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(u),
	}, nil
}

func (s *authService) Me(ctx context.Context) (*dto.UserResponse, error) {
	userID := types.GetUserID(ctx)
	if userID == "" {
		return nil, ierr.NewError("no authenticated user").
			Mark(ierr.ErrUnauthorized)
	}

	u, err := s.UserRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

func (s *authService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID := types.GetUserID(ctx)
	if userID == "" {
		return nil, ierr.NewError("no authenticated user").
			Mark(ierr.ErrUnauthorized)
	}

	u, err := s.UserRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	u.UpdatedAt = time.Now().UTC()
	u.UpdatedBy = userID

	if err := s.UserRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return dto.NewUserResponse(u), nil
}

func (s *authService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID := types.GetUserID(ctx)
	if userID == "" {
		return ierr.NewError("no authenticated user").
			Mark(ierr.ErrUnauthorized)
	}

	u, err := s.UserRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return ierr.NewError("current password is incorrect").
			WithHint("Enter your current password to set a new one").
			Mark(ierr.ErrValidation)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	u.PasswordHash = hash
	u.UpdatedAt = time.Now().UTC()
	u.UpdatedBy = userID

	if err := s.UserRepo.Update(ctx, u); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "change_password", "user", u.ID, "changed password")
	return nil
}

func errInvalidCredentials() error {
	return ierr.NewError("invalid email or password").
		WithHint("Check your credentials and try again").
		Mark(ierr.ErrUnauthorized)
}
