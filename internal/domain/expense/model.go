package expense

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Expense is money spent by the business. Amount is in cents.
type Expense struct {
	ID            string `db:"id" json:"id"`
	ExpenseNumber string `db:"expense_number" json:"expense_number"`
	Category      string `db:"category" json:"category"`
	Vendor        string `db:"vendor" json:"vendor"`

	Amount      int64     `db:"amount" json:"amount"`
	ExpenseDate time.Time `db:"expense_date" json:"expense_date"`

	PaymentMethod types.PaymentMethod `db:"payment_method" json:"payment_method"`
	ReceiptURL    string              `db:"receipt_url" json:"receipt_url"`
	Description   string              `db:"description" json:"description"`
	AccountID     *string             `db:"account_id" json:"account_id,omitempty"`

	ExpenseStatus types.ExpenseStatus `db:"expense_status" json:"expense_status"`

	types.BaseModel
}
