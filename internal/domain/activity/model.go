package activity

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Activity is one append-only audit record of a mutation.
type Activity struct {
	ID         string  `db:"id" json:"id"`
	UserID     string  `db:"user_id" json:"user_id"`
	Action     string  `db:"action" json:"action"`
	EntityType string  `db:"entity_type" json:"entity_type"`
	EntityID   *string `db:"entity_id" json:"entity_id,omitempty"`
	Details    string  `db:"details" json:"details"`

	types.BaseModel
}
