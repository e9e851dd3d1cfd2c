package service

import (
	"testing"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/client"
	"github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PaymentService
	testData struct {
		client  *client.Client
		invoice *invoice.Invoice
	}
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *PaymentServiceSuite) setupService() {
	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		ClientRepo:    s.GetStores().ClientRepo,
		InvoiceRepo:   s.GetStores().InvoiceRepo,
		PaymentRepo:   s.GetStores().PaymentRepo,
		ReceiptRepo:   s.GetStores().ReceiptRepo,
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	}
	s.service = NewPaymentService(params, NewSettingsService(params))
}

func (s *PaymentServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_payment",
		CompanyName:  "Test Client Ltd",
		Email:        "billing@testclient.test",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))

	s.testData.invoice = &invoice.Invoice{
		ID:            "inv_test_payment",
		InvoiceNumber: "INV-000001",
		ClientID:      s.testData.client.ID,
		Title:         "Monthly retainer",
		InvoiceStatus: types.InvoiceStatusSent,
		IssueDate:     s.GetNow().AddDate(0, 0, -14),
		DueDate:       s.GetNow().AddDate(0, 0, 14),
		Subtotal:      100000,
		TaxAmount:     16000,
		Total:         116000,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), s.testData.invoice))
}

func (s *PaymentServiceSuite) TestCreatePartialPayment() {
	resp, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        50000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodBankTransfer,
	})
	s.NoError(err)
	s.NotNil(resp)
	s.Equal(s.testData.client.ID, resp.ClientID)
	s.Nil(resp.Receipt)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(int64(50000), inv.PaidAmount)
	s.Equal(types.InvoiceStatusPartial, inv.InvoiceStatus)
	s.Equal(int64(66000), inv.Outstanding())
}

func (s *PaymentServiceSuite) TestCreateFullPaymentMarksPaid() {
	_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        116000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.NoError(err)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.Equal(int64(0), inv.Outstanding())
}

func (s *PaymentServiceSuite) TestCreatePaymentExceedingBalance() {
	_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        200000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentOnCancelledInvoice() {
	s.testData.invoice.InvoiceStatus = types.InvoiceStatusCancelled
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), s.testData.invoice))

	_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        1000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentUnknownInvoice() {
	_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     "inv_missing",
		Amount:        1000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentInvalidMethod() {
	_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        1000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethod("barter"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentWithReceipt() {
	resp, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        30000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodMpesa,
		IssueReceipt:  true,
	})
	s.NoError(err)
	s.NotNil(resp.Receipt)
	s.Equal("REC-000001", resp.Receipt.ReceiptNumber)
	s.Equal(int64(30000), resp.Receipt.Amount)
	s.Equal(s.testData.client.ID, resp.Receipt.ClientID)
	s.NotNil(resp.Receipt.PaymentID)
	s.Equal(resp.Payment.ID, *resp.Receipt.PaymentID)

	receipts, err := s.GetStores().ReceiptRepo.List(s.GetContext(), types.NewNoLimitQueryFilter())
	s.NoError(err)
	s.Len(receipts, 1)
}

func (s *PaymentServiceSuite) TestDeletePaymentRestoresBalance() {
	resp, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        50000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.NoError(err)

	s.NoError(s.service.DeletePayment(s.GetContext(), resp.Payment.ID))

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(int64(0), inv.PaidAmount)
	s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)

	_, err = s.service.GetPayment(s.GetContext(), resp.Payment.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestDeleteOneOfTwoPayments() {
	first, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        40000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.NoError(err)

	_, err = s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        76000,
		PaymentDate:   s.GetNow(),
		PaymentMethod: types.PaymentMethodCash,
	})
	s.NoError(err)

	s.NoError(s.service.DeletePayment(s.GetContext(), first.Payment.ID))

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(int64(76000), inv.PaidAmount)
	s.Equal(types.InvoiceStatusPartial, inv.InvoiceStatus)
}

func (s *PaymentServiceSuite) TestListPaymentsByInvoice() {
	for _, amount := range []int64{10000, 20000} {
		_, err := s.service.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
			InvoiceID:     s.testData.invoice.ID,
			Amount:        amount,
			PaymentDate:   s.GetNow().Add(-time.Minute),
			PaymentMethod: types.PaymentMethodCash,
		})
		s.NoError(err)
	}

	resp, err := s.service.ListPayments(s.GetContext(), &dto.PaymentFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		InvoiceID:   &s.testData.invoice.ID,
	})
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}
