package project

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Project is a unit of client work. Budget is in minor currency units
// (cents).
type Project struct {
	ID          string `db:"id" json:"id"`
	ClientID    string `db:"client_id" json:"client_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	ProjectStatus types.ProjectStatus   `db:"project_status" json:"project_status"`
	Priority      types.ProjectPriority `db:"priority" json:"priority"`

	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`

	// Budget in cents
	Budget int64 `db:"budget" json:"budget"`

	// Progress percentage 0-100
	Progress int `db:"progress" json:"progress"`

	types.BaseModel
}
