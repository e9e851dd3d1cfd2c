package department

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Department groups employees under a manager. Budget is in cents.
type Department struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	ManagerID   *string `db:"manager_id" json:"manager_id,omitempty"`
	Budget      int64   `db:"budget" json:"budget"`

	types.BaseModel
}
