package invoice

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Invoice represents a bill issued to a client. All amounts are integer
// minor currency units (cents); display conversion is the UI's job.
type Invoice struct {
	ID string `db:"id" json:"id"`

	// InvoiceNumber is the human-facing sequential number, e.g. INV-000001
	InvoiceNumber string `db:"invoice_number" json:"invoice_number"`

	ClientID string `db:"client_id" json:"client_id"`
	Title    string `db:"title" json:"title"`

	InvoiceStatus types.InvoiceStatus `db:"invoice_status" json:"invoice_status"`

	IssueDate time.Time `db:"issue_date" json:"issue_date"`
	DueDate   time.Time `db:"due_date" json:"due_date"`

	// Amounts in cents
	Subtotal       int64 `db:"subtotal" json:"subtotal"`
	TaxAmount      int64 `db:"tax_amount" json:"tax_amount"`
	DiscountAmount int64 `db:"discount_amount" json:"discount_amount"`
	Total          int64 `db:"total" json:"total"`
	PaidAmount     int64 `db:"paid_amount" json:"paid_amount"`

	Notes string `db:"notes" json:"notes"`
	Terms string `db:"terms" json:"terms"`

	types.BaseModel
}

// Outstanding returns the unpaid balance in cents
func (i *Invoice) Outstanding() int64 {
	return i.Total - i.PaidAmount
}
