package estimate

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Estimate is a quote offered to a client before work begins. Amounts
// are in minor currency units (cents).
type Estimate struct {
	ID             string `db:"id" json:"id"`
	EstimateNumber string `db:"estimate_number" json:"estimate_number"`
	ClientID       string `db:"client_id" json:"client_id"`
	Title          string `db:"title" json:"title"`

	EstimateStatus types.EstimateStatus `db:"estimate_status" json:"estimate_status"`

	IssueDate  time.Time  `db:"issue_date" json:"issue_date"`
	ExpiryDate *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`

	Subtotal       int64 `db:"subtotal" json:"subtotal"`
	TaxAmount      int64 `db:"tax_amount" json:"tax_amount"`
	DiscountAmount int64 `db:"discount_amount" json:"discount_amount"`
	Total          int64 `db:"total" json:"total"`

	Notes string `db:"notes" json:"notes"`
	Terms string `db:"terms" json:"terms"`

	types.BaseModel
}
