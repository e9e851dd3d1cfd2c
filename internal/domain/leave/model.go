package leave

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Leave is a request for time off. Days is the requested span in whole
// days, inclusive of both ends.
type Leave struct {
	ID         string `db:"id" json:"id"`
	EmployeeID string `db:"employee_id" json:"employee_id"`

	LeaveType types.LeaveType `db:"leave_type" json:"leave_type"`
	StartDate time.Time       `db:"start_date" json:"start_date"`
	EndDate   time.Time       `db:"end_date" json:"end_date"`
	Days      int             `db:"days" json:"days"`
	Reason    string          `db:"reason" json:"reason"`

	LeaveStatus  types.LeaveStatus `db:"leave_status" json:"leave_status"`
	ApprovedBy   *string           `db:"approved_by" json:"approved_by,omitempty"`
	ApprovalDate *time.Time        `db:"approval_date" json:"approval_date,omitempty"`

	types.BaseModel
}
