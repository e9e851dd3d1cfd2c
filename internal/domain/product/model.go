package product

import (
	"github.com/bizledger/bizledger/internal/types"
)

// Product is a physical item sold by the business. Prices are in minor
// currency units (cents).
type Product struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	SKU         string `db:"sku" json:"sku"`
	Category    string `db:"category" json:"category"`

	UnitPrice int64 `db:"unit_price" json:"unit_price"`
	CostPrice int64 `db:"cost_price" json:"cost_price"`

	StockQuantity int    `db:"stock_quantity" json:"stock_quantity"`
	Unit          string `db:"unit" json:"unit"`

	types.BaseModel
}
