package payroll

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Payroll is a single pay run entry for an employee. All monetary
// fields are in cents. NetSalary = BasicSalary + Allowances -
// Deductions - Tax.
type Payroll struct {
	ID         string `db:"id" json:"id"`
	EmployeeID string `db:"employee_id" json:"employee_id"`

	PayPeriodStart time.Time `db:"pay_period_start" json:"pay_period_start"`
	PayPeriodEnd   time.Time `db:"pay_period_end" json:"pay_period_end"`

	BasicSalary int64 `db:"basic_salary" json:"basic_salary"`
	Allowances  int64 `db:"allowances" json:"allowances"`
	Deductions  int64 `db:"deductions" json:"deductions"`
	Tax         int64 `db:"tax" json:"tax"`
	NetSalary   int64 `db:"net_salary" json:"net_salary"`

	PayrollStatus types.PayrollStatus `db:"payroll_status" json:"payroll_status"`
	PaymentDate   *time.Time          `db:"payment_date" json:"payment_date,omitempty"`

	types.BaseModel
}

// ComputeNet recalculates NetSalary from the component fields.
func (p *Payroll) ComputeNet() {
	p.NetSalary = p.BasicSalary + p.Allowances - p.Deductions - p.Tax
}
