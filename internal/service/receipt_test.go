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

type ReceiptServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ReceiptService
	testData struct {
		client *client.Client
	}
}

func TestReceiptService(t *testing.T) {
	suite.Run(t, new(ReceiptServiceSuite))
}

func (s *ReceiptServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *ReceiptServiceSuite) setupService() {
	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		ClientRepo:    s.GetStores().ClientRepo,
		ReceiptRepo:   s.GetStores().ReceiptRepo,
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	}
	s.service = NewReceiptService(params, NewSettingsService(params))
}

func (s *ReceiptServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_receipt",
		CompanyName:  "Acme Ltd",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *ReceiptServiceSuite) TestCreateReceipt() {
	resp, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
		ClientID:      s.testData.client.ID,
		Amount:        50000,
		PaymentMethod: types.PaymentMethodMpesa,
		ReceiptDate:   s.GetNow(),
	})
	s.NoError(err)
	s.Equal("REC-000001", resp.ReceiptNumber)
	s.Equal(int64(50000), resp.Amount)
}

func (s *ReceiptServiceSuite) TestReceiptNumbersAreSequential() {
	for i, want := range []string{"REC-000001", "REC-000002", "REC-000003"} {
		resp, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
			ClientID:      s.testData.client.ID,
			Amount:        int64(1000 * (i + 1)),
			PaymentMethod: types.PaymentMethodCash,
			ReceiptDate:   s.GetNow(),
		})
		s.NoError(err)
		s.Equal(want, resp.ReceiptNumber)
	}
}

func (s *ReceiptServiceSuite) TestCreateReceiptUnknownClient() {
	_, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
		ClientID:      "client_missing",
		Amount:        50000,
		PaymentMethod: types.PaymentMethodCash,
		ReceiptDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ReceiptServiceSuite) TestCreateReceiptInvalidMethod() {
	_, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
		ClientID:      s.testData.client.ID,
		Amount:        50000,
		PaymentMethod: types.PaymentMethod("barter"),
		ReceiptDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ReceiptServiceSuite) TestListReceiptsByClient() {
	_, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
		ClientID:      s.testData.client.ID,
		Amount:        50000,
		PaymentMethod: types.PaymentMethodCash,
		ReceiptDate:   s.GetNow(),
	})
	s.NoError(err)

	resp, err := s.service.ListReceipts(s.GetContext(), &dto.ReceiptFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		ClientID:    lo.ToPtr(s.testData.client.ID),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(1, resp.Pagination.Total)
}

func (s *ReceiptServiceSuite) TestDeleteReceipt() {
	created, err := s.service.CreateReceipt(s.GetContext(), dto.CreateReceiptRequest{
		ClientID:      s.testData.client.ID,
		Amount:        50000,
		PaymentMethod: types.PaymentMethodCash,
		ReceiptDate:   s.GetNow(),
	})
	s.NoError(err)

	s.NoError(s.service.DeleteReceipt(s.GetContext(), created.ID))

	_, err = s.service.GetReceipt(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
