package dto

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/user"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateUserRequest struct {
	Email      string         `json:"email" validate:"required,email,max=255"`
	Name       string         `json:"name" validate:"required,max=255"`
	Password   string         `json:"password" validate:"required,min=8,max=72"`
	Role       types.UserRole `json:"role" validate:"omitempty"`
	Department string         `json:"department" validate:"omitempty,max=100"`
	Phone      string         `json:"phone" validate:"omitempty,max=50"`
	ClientID   *string        `json:"client_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Role != "" {
		return r.Role.Validate()
	}
	return nil
}

// ToUser builds the account record; the caller supplies the password
// hash.
func (r *CreateUserRequest) ToUser(ctx context.Context, passwordHash string) *user.User {
	role := r.Role
	if role == "" {
		role = types.UserRoleUser
	}
	return &user.User{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: passwordHash,
		Role:         role,
		Department:   r.Department,
		Phone:        r.Phone,
		ClientID:     r.ClientID,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateUserRequest struct {
	Name       *string         `json:"name,omitempty" validate:"omitempty,max=255"`
	Role       *types.UserRole `json:"role,omitempty"`
	Department *string         `json:"department,omitempty" validate:"omitempty,max=100"`
	Phone      *string         `json:"phone,omitempty" validate:"omitempty,max=50"`
	ClientID   *string         `json:"client_id,omitempty"`
	Password   *string         `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Role != nil {
		return r.Role.Validate()
	}
	return nil
}

// Apply copies the non-password fields; password changes are handled
// separately by the service.
func (r *UpdateUserRequest) Apply(u *user.User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.Department != nil {
		u.Department = *r.Department
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.ClientID != nil {
		u.ClientID = r.ClientID
	}
}

type UserResponse struct {
	*user.User
}

type ListUsersResponse = types.ListResponse[*UserResponse]

func NewUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{User: u}
}
