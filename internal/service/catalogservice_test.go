package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *CatalogServiceSuite) setupService() {
	s.service = NewCatalogService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		ServiceRepo:  s.GetStores().ServiceRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *CatalogServiceSuite) createService() *dto.ServiceResponse {
	resp, err := s.service.CreateService(s.GetContext(), dto.CreateServiceRequest{
		Name:       "Bookkeeping",
		Category:   "accounting",
		HourlyRate: 500000,
		Unit:       "hour",
		TaxRate:    1600,
	})
	s.NoError(err)
	return resp
}

func (s *CatalogServiceSuite) TestCreateService() {
	resp := s.createService()
	s.NotEmpty(resp.ID)
	s.True(resp.IsActive)
	s.Equal(1600, resp.TaxRate)
}

func (s *CatalogServiceSuite) TestCreateServiceInvalidTaxRate() {
	_, err := s.service.CreateService(s.GetContext(), dto.CreateServiceRequest{
		Name:    "Bookkeeping",
		TaxRate: 20000,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CatalogServiceSuite) TestDeactivateService() {
	created := s.createService()

	updated, err := s.service.UpdateService(s.GetContext(), created.ID, dto.UpdateServiceRequest{
		IsActive: lo.ToPtr(false),
	})
	s.NoError(err)
	s.False(updated.IsActive)
	s.Equal("Bookkeeping", updated.Name)
}

func (s *CatalogServiceSuite) TestListServices() {
	s.createService()

	resp, err := s.service.ListServices(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(1, resp.Pagination.Total)
}

func (s *CatalogServiceSuite) TestDeleteService() {
	created := s.createService()

	s.NoError(s.service.DeleteService(s.GetContext(), created.ID))

	_, err := s.service.GetService(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
