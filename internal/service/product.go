package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/product"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ProductService manages the sellable goods catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter *types.QueryFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (*dto.ProductResponse, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProduct(ctx)
	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "product", p.ID,
		fmt.Sprintf("created product %s", p.Name))

	return dto.NewProductResponse(p), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}

func (s *productService) ListProducts(ctx context.Context, filter *types.QueryFilter) (*dto.ListProductsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	products, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ProductRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(products, func(p *product.Product, _ int) *dto.ProductResponse {
		return dto.NewProductResponse(p)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(p)
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "product", p.ID,
		fmt.Sprintf("updated product %s", p.Name))

	return dto.NewProductResponse(p), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "product", id, "deleted product")
	return nil
}

// AdjustStock applies a relative stock change, clamping at zero.
func (s *productService) AdjustStock(ctx context.Context, id string, delta int) (*dto.ProductResponse, error) {
	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.StockQuantity += delta
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "adjust_stock", "product", p.ID,
		fmt.Sprintf("adjusted stock of %s by %d", p.Name, delta))

	return dto.NewProductResponse(p), nil
}
