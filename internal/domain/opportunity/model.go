package opportunity

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Opportunity is a potential deal in the sales pipeline. EstimatedValue
// is in cents; Probability is a percentage 0-100.
type Opportunity struct {
	ID       string  `db:"id" json:"id"`
	Title    string  `db:"title" json:"title"`
	ClientID *string `db:"client_id" json:"client_id,omitempty"`

	Stage          types.OpportunityStage `db:"stage" json:"stage"`
	EstimatedValue int64                  `db:"estimated_value" json:"estimated_value"`
	Probability    int                    `db:"probability" json:"probability"`

	ExpectedCloseDate *time.Time `db:"expected_close_date" json:"expected_close_date,omitempty"`
	Source            string     `db:"source" json:"source"`
	AssignedTo        *string    `db:"assigned_to" json:"assigned_to,omitempty"`
	Notes             string     `db:"notes" json:"notes"`

	types.BaseModel
}
