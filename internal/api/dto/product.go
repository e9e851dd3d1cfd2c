package dto

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/product"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateProductRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Description   string `json:"description"`
	SKU           string `json:"sku" validate:"omitempty,max=100"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	UnitPrice     int64  `json:"unit_price" validate:"min=0"`
	CostPrice     int64  `json:"cost_price" validate:"min=0"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
	Unit          string `json:"unit" validate:"omitempty,max=50"`
}

func (r *CreateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	return &product.Product{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:          r.Name,
		Description:   r.Description,
		SKU:           r.SKU,
		Category:      r.Category,
		UnitPrice:     r.UnitPrice,
		CostPrice:     r.CostPrice,
		StockQuantity: r.StockQuantity,
		Unit:          r.Unit,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateProductRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description   *string `json:"description,omitempty"`
	SKU           *string `json:"sku,omitempty" validate:"omitempty,max=100"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=100"`
	UnitPrice     *int64  `json:"unit_price,omitempty" validate:"omitempty,min=0"`
	CostPrice     *int64  `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	StockQuantity *int    `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	Unit          *string `json:"unit,omitempty" validate:"omitempty,max=50"`
}

func (r *UpdateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateProductRequest) Apply(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.SKU != nil {
		p.SKU = *r.SKU
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.UnitPrice != nil {
		p.UnitPrice = *r.UnitPrice
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.StockQuantity != nil {
		p.StockQuantity = *r.StockQuantity
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
}

type ProductResponse struct {
	*product.Product
}

type ListProductsResponse = types.ListResponse[*ProductResponse]

func NewProductResponse(p *product.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{Product: p}
}
