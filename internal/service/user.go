package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/auth"
	"github.com/bizledger/bizledger/internal/cache"
	"github.com/bizledger/bizledger/internal/domain/user"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// UserService manages sign-in accounts. Deleting a user is a soft
// delete so historical activity keeps its author.
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, filter *types.QueryFilter) (*dto.ListUsersResponse, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{ServiceParams: params}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.UserRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ierr.NewErrorf("user with email %s already exists", req.Email).
			WithHint("Email addresses must be unique").
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := req.ToUser(ctx, hash)
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "user", u.ID,
		fmt.Sprintf("created user %s", u.Email))

	return dto.NewUserResponse(u), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

func (s *userService) ListUsers(ctx context.Context, filter *types.QueryFilter) (*dto.ListUsersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.UserRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(users, func(u *user.User, _ int) *dto.UserResponse {
		return dto.NewUserResponse(u)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(u)
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now().UTC()
	u.UpdatedBy = types.GetUserID(ctx)

	if err := s.UserRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixUser, types.GetTenantID(ctx), u.ID))

	recordActivity(ctx, s.ServiceParams, "update", "user", u.ID,
		fmt.Sprintf("updated user %s", u.Email))

	return dto.NewUserResponse(u), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == types.GetUserID(ctx) {
		return ierr.NewError("cannot delete own account").
			WithHint("Ask another administrator to remove this account").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixUser, types.GetTenantID(ctx), id))

	recordActivity(ctx, s.ServiceParams, "delete", "user", id, "deactivated user")
	return nil
}
