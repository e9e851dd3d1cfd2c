package service

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Service is billable work offered by the business. Rates are in minor
// currency units (cents); TaxRate is basis points (e.g. 1600 = 16%).
type Service struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`

	HourlyRate int64 `db:"hourly_rate" json:"hourly_rate"`
	FixedPrice int64 `db:"fixed_price" json:"fixed_price"`

	Unit    string `db:"unit" json:"unit"`
	TaxRate int    `db:"tax_rate" json:"tax_rate"`

	IsActive bool `db:"is_active" json:"is_active"`

	types.BaseModel
}
