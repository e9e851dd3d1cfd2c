package payment

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Payment records money received against an invoice. Amount is in minor
// currency units (cents).
type Payment struct {
	ID        string `db:"id" json:"id"`
	InvoiceID string `db:"invoice_id" json:"invoice_id"`
	ClientID  string `db:"client_id" json:"client_id"`

	Amount          int64               `db:"amount" json:"amount"`
	PaymentDate     time.Time           `db:"payment_date" json:"payment_date"`
	PaymentMethod   types.PaymentMethod `db:"payment_method" json:"payment_method"`
	ReferenceNumber string              `db:"reference_number" json:"reference_number"`
	Notes           string              `db:"notes" json:"notes"`

	types.BaseModel
}
