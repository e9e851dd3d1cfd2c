package user

import (
	"github.com/bizledger/bizledger/internal/types"
)

// User is an account that can sign in. PasswordHash is a bcrypt hash
// and is never serialized.
type User struct {
	ID           string `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`

	Role       types.UserRole `db:"role" json:"role"`
	Department string         `db:"department" json:"department"`
	Phone      string         `db:"phone" json:"phone"`
	ClientID   *string        `db:"client_id" json:"client_id,omitempty"`

	types.BaseModel
}
