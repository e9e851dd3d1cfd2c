package receipt

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Receipt acknowledges money received from a client, optionally linked
// to the payment that produced it. Amount is in cents.
type Receipt struct {
	ID            string  `db:"id" json:"id"`
	ReceiptNumber string  `db:"receipt_number" json:"receipt_number"`
	ClientID      string  `db:"client_id" json:"client_id"`
	PaymentID     *string `db:"payment_id" json:"payment_id,omitempty"`

	Amount        int64               `db:"amount" json:"amount"`
	PaymentMethod types.PaymentMethod `db:"payment_method" json:"payment_method"`
	ReceiptDate   time.Time           `db:"receipt_date" json:"receipt_date"`
	Notes         string              `db:"notes" json:"notes"`

	types.BaseModel
}
