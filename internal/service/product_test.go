package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *ProductServiceSuite) setupService() {
	s.service = NewProductService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		ProductRepo:  s.GetStores().ProductRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *ProductServiceSuite) createProduct() *dto.ProductResponse {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:          "Thermal printer",
		SKU:           "TP-100",
		UnitPrice:     1500000,
		CostPrice:     900000,
		StockQuantity: 10,
		Unit:          "piece",
	})
	s.NoError(err)
	return resp
}

func (s *ProductServiceSuite) TestCreateProduct() {
	resp := s.createProduct()
	s.NotEmpty(resp.ID)
	s.Equal("Thermal printer", resp.Name)
	s.Equal(10, resp.StockQuantity)
}

func (s *ProductServiceSuite) TestCreateProductRequiresName() {
	_, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		UnitPrice: 100,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProductServiceSuite) TestUpdateProductSparse() {
	created := s.createProduct()

	updated, err := s.service.UpdateProduct(s.GetContext(), created.ID, dto.UpdateProductRequest{
		UnitPrice: lo.ToPtr(int64(1600000)),
	})
	s.NoError(err)
	s.Equal(int64(1600000), updated.UnitPrice)
	s.Equal("TP-100", updated.SKU)
}

func (s *ProductServiceSuite) TestAdjustStock() {
	created := s.createProduct()

	resp, err := s.service.AdjustStock(s.GetContext(), created.ID, -4)
	s.NoError(err)
	s.Equal(6, resp.StockQuantity)

	// Drops below zero clamp at zero.
	resp, err = s.service.AdjustStock(s.GetContext(), created.ID, -100)
	s.NoError(err)
	s.Equal(0, resp.StockQuantity)
}

func (s *ProductServiceSuite) TestListProducts() {
	s.createProduct()

	resp, err := s.service.ListProducts(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(1, resp.Pagination.Total)
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	created := s.createProduct()

	s.NoError(s.service.DeleteProduct(s.GetContext(), created.ID))

	_, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
