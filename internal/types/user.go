package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

// UserRole is the coarse authorization role attached to a user account.
type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleStaff      UserRole = "staff"
	UserRoleAccountant UserRole = "accountant"
	UserRoleClient     UserRole = "client"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Validate() error {
	switch r {
	case UserRoleUser, UserRoleStaff, UserRoleAccountant,
		UserRoleClient, UserRoleAdmin, UserRoleSuperAdmin:
		return nil
	}
	return ierr.NewError("invalid user role").
		WithHint("Role must be one of user, staff, accountant, client, admin, super_admin").
		Mark(ierr.ErrValidation)
}

// IsAdmin reports whether the role carries admin privileges.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}
