package client

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Client represents a customer account of the business.
type Client struct {
	// ID is the unique identifier for the client
	ID string `db:"id" json:"id"`

	// CompanyName is the legal or trading name of the client
	CompanyName string `db:"company_name" json:"company_name"`

	ContactPerson string `db:"contact_person" json:"contact_person"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	Address       string `db:"address" json:"address"`
	City          string `db:"city" json:"city"`
	Country       string `db:"country" json:"country"`
	PostalCode    string `db:"postal_code" json:"postal_code"`
	TaxID         string `db:"tax_id" json:"tax_id"`
	Website       string `db:"website" json:"website"`
	Industry      string `db:"industry" json:"industry"`

	// ClientStatus is the relationship state, distinct from the
	// lifecycle status on BaseModel
	ClientStatus types.ClientStatus `db:"client_status" json:"client_status"`

	Notes string `db:"notes" json:"notes"`

	types.BaseModel
}
