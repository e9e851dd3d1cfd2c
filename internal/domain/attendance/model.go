package attendance

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Attendance is one employee's record for a single day.
type Attendance struct {
	ID         string    `db:"id" json:"id"`
	EmployeeID string    `db:"employee_id" json:"employee_id"`
	Date       time.Time `db:"date" json:"date"`

	CheckIn  *time.Time `db:"check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `db:"check_out" json:"check_out,omitempty"`

	AttendanceStatus types.AttendanceStatus `db:"attendance_status" json:"attendance_status"`
	Notes            string                 `db:"notes" json:"notes"`

	types.BaseModel
}
