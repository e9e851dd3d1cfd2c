package settings

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Setting is a single key/value pair of tenant configuration. Values
// are stored as strings; callers parse what they need.
type Setting struct {
	ID          string `db:"id" json:"id"`
	Key         string `db:"key" json:"key"`
	Value       string `db:"value" json:"value"`
	Category    string `db:"category" json:"category"`
	Description string `db:"description" json:"description"`

	types.BaseModel
}
