package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/client"
	"github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  InvoiceService
	testData struct {
		client *client.Client
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *InvoiceServiceSuite) setupService() {
	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		ClientRepo:    s.GetStores().ClientRepo,
		InvoiceRepo:   s.GetStores().InvoiceRepo,
		PaymentRepo:   s.GetStores().PaymentRepo,
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	}
	s.service = NewInvoiceService(params, NewSettingsService(params))
}

func (s *InvoiceServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_invoice",
		CompanyName:  "Test Client Ltd",
		Email:        "billing@testclient.test",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *InvoiceServiceSuite) createInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  s.testData.client.ID,
		Title:     "Website redesign",
		IssueDate: s.GetNow(),
		DueDate:   s.GetNow().AddDate(0, 0, 30),
		Subtotal:  100000,
		TaxAmount: 16000,
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	resp, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)
	s.NotNil(resp)
	s.Equal("INV-000001", resp.InvoiceNumber)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.Equal(int64(116000), resp.Total)
	s.Equal(int64(116000), resp.Outstanding)

	second, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)
	s.Equal("INV-000002", second.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceUnknownClient() {
	req := s.createInvoiceRequest()
	req.ClientID = "client_missing"

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceDueBeforeIssue() {
	req := s.createInvoiceRequest()
	req.DueDate = req.IssueDate.AddDate(0, 0, -1)

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceDiscountTooLarge() {
	req := s.createInvoiceRequest()
	req.DiscountAmount = 200000

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestUpdateInvoice() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)

	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, dto.UpdateInvoiceRequest{
		Subtotal: lo.ToPtr(int64(200000)),
	})
	s.NoError(err)
	s.Equal(int64(216000), resp.Total)
}

func (s *InvoiceServiceSuite) TestUpdatePaidInvoiceBlocked() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	inv.InvoiceStatus = types.InvoiceStatusPaid
	inv.PaidAmount = inv.Total
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), inv))

	_, err = s.service.UpdateInvoice(s.GetContext(), created.ID, dto.UpdateInvoiceRequest{
		Title: lo.ToPtr("New title"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// A status-only change is still allowed on a paid invoice.
	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, dto.UpdateInvoiceRequest{
		Status: lo.ToPtr(types.InvoiceStatusCancelled),
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusCancelled, resp.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestDeleteInvoice() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteInvoice(s.GetContext(), created.ID))

	_, err = s.service.GetInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestDeleteInvoiceWithPaymentsBlocked() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	inv.PaidAmount = 10000
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), inv))

	err = s.service.DeleteInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestMarkOverdue() {
	pastDue := &invoice.Invoice{
		ID:            "inv_past_due",
		InvoiceNumber: "INV-000100",
		ClientID:      s.testData.client.ID,
		Title:         "Past due",
		InvoiceStatus: types.InvoiceStatusSent,
		IssueDate:     s.GetNow().AddDate(0, -2, 0),
		DueDate:       s.GetNow().AddDate(0, -1, 0),
		Subtotal:      50000,
		Total:         50000,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), pastDue))

	notDue := &invoice.Invoice{
		ID:            "inv_not_due",
		InvoiceNumber: "INV-000101",
		ClientID:      s.testData.client.ID,
		Title:         "Not due yet",
		InvoiceStatus: types.InvoiceStatusSent,
		IssueDate:     s.GetNow(),
		DueDate:       s.GetNow().AddDate(0, 1, 0),
		Subtotal:      50000,
		Total:         50000,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), notDue))

	draft := &invoice.Invoice{
		ID:            "inv_draft_old",
		InvoiceNumber: "INV-000102",
		ClientID:      s.testData.client.ID,
		Title:         "Old draft",
		InvoiceStatus: types.InvoiceStatusDraft,
		IssueDate:     s.GetNow().AddDate(0, -2, 0),
		DueDate:       s.GetNow().AddDate(0, -1, 0),
		Subtotal:      50000,
		Total:         50000,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), draft))

	updated, err := s.service.MarkOverdue(s.GetContext())
	s.NoError(err)
	s.Equal(1, updated)

	got, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), pastDue.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, got.InvoiceStatus)

	got, err = s.GetStores().InvoiceRepo.Get(s.GetContext(), notDue.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, got.InvoiceStatus)

	got, err = s.GetStores().InvoiceRepo.Get(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusDraft, got.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestListInvoicesByStatus() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
		s.NoError(err)
	}

	resp, err := s.service.ListInvoices(s.GetContext(), &dto.InvoiceFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		Status:      lo.ToPtr(types.InvoiceStatusDraft),
	})
	s.NoError(err)
	s.Len(resp.Items, 3)
}

func (s *InvoiceServiceSuite) TestInvoicesAreTenantScoped() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createInvoiceRequest())
	s.NoError(err)

	other := testutil.SetupContextForTenant("tenant-other")
	_, err = s.service.GetInvoice(other, created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
