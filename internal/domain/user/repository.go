package user

import (
	"context"

	"github.com/bizledger/bizledger/internal/types"
)

// Repository defines the interface for user data access. Delete is a
// soft delete; deleted users are excluded from Get and List.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
