package employee

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Employee is a member of staff. Salary is the monthly gross in cents.
type Employee struct {
	ID             string `db:"id" json:"id"`
	EmployeeNumber string `db:"employee_number" json:"employee_number"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`

	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	HireDate    time.Time  `db:"hire_date" json:"hire_date"`

	Department string `db:"department" json:"department"`
	Position   string `db:"position" json:"position"`
	Salary     int64  `db:"salary" json:"salary"`

	EmploymentType   string                 `db:"employment_type" json:"employment_type"`
	EmploymentStatus types.EmploymentStatus `db:"employment_status" json:"employment_status"`

	types.BaseModel
}

// FullName returns the display name used in payslips and listings.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
