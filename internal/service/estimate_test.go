package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/client"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type EstimateServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  EstimateService
	testData struct {
		client *client.Client
	}
}

func TestEstimateService(t *testing.T) {
	suite.Run(t, new(EstimateServiceSuite))
}

func (s *EstimateServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *EstimateServiceSuite) setupService() {
	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		ClientRepo:    s.GetStores().ClientRepo,
		EstimateRepo:  s.GetStores().EstimateRepo,
		InvoiceRepo:   s.GetStores().InvoiceRepo,
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	}
	s.service = NewEstimateService(params, NewSettingsService(params))
}

func (s *EstimateServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_estimate",
		CompanyName:  "Prospect Ltd",
		Email:        "hello@prospect.test",
		ClientStatus: types.ClientStatusProspect,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *EstimateServiceSuite) createEstimateRequest() dto.CreateEstimateRequest {
	return dto.CreateEstimateRequest{
		ClientID:       s.testData.client.ID,
		Title:          "Office fit-out",
		IssueDate:      s.GetNow(),
		Subtotal:       500000,
		TaxAmount:      80000,
		DiscountAmount: 30000,
		Terms:          "Valid for 30 days",
	}
}

func (s *EstimateServiceSuite) TestCreateEstimate() {
	resp, err := s.service.CreateEstimate(s.GetContext(), s.createEstimateRequest())
	s.NoError(err)
	s.Equal("EST-000001", resp.EstimateNumber)
	s.Equal(types.EstimateStatusDraft, resp.EstimateStatus)
	s.Equal(int64(550000), resp.Total)
}

func (s *EstimateServiceSuite) TestConvertAcceptedEstimate() {
	created, err := s.service.CreateEstimate(s.GetContext(), s.createEstimateRequest())
	s.NoError(err)

	_, err = s.service.UpdateEstimate(s.GetContext(), created.ID, dto.UpdateEstimateRequest{
		Status: lo.ToPtr(types.EstimateStatusAccepted),
	})
	s.NoError(err)

	inv, err := s.service.ConvertToInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("INV-000001", inv.InvoiceNumber)
	s.Equal(created.Title, inv.Title)
	s.Equal(created.Total, inv.Total)
	s.Equal(created.Terms, inv.Terms)
	s.Equal(types.InvoiceStatusDraft, inv.InvoiceStatus)

	got, err := s.service.GetEstimate(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.EstimateStatusConverted, got.EstimateStatus)
}

func (s *EstimateServiceSuite) TestConvertDraftEstimateBlocked() {
	created, err := s.service.CreateEstimate(s.GetContext(), s.createEstimateRequest())
	s.NoError(err)

	_, err = s.service.ConvertToInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestConvertTwiceBlocked() {
	created, err := s.service.CreateEstimate(s.GetContext(), s.createEstimateRequest())
	s.NoError(err)

	_, err = s.service.UpdateEstimate(s.GetContext(), created.ID, dto.UpdateEstimateRequest{
		Status: lo.ToPtr(types.EstimateStatusAccepted),
	})
	s.NoError(err)

	_, err = s.service.ConvertToInvoice(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.ConvertToInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestDeleteEstimate() {
	created, err := s.service.CreateEstimate(s.GetContext(), s.createEstimateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteEstimate(s.GetContext(), created.ID))

	_, err = s.service.GetEstimate(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
