package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *ClientServiceSuite) setupService() {
	s.service = NewClientService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		ClientRepo:   s.GetStores().ClientRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *ClientServiceSuite) TestCreateClient() {
	resp, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName:   "Acme Ltd",
		ContactPerson: "Jane Doe",
		Email:         "jane@acme.test",
		City:          "Nairobi",
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Acme Ltd", resp.CompanyName)
	s.Equal(types.ClientStatusActive, resp.ClientStatus)
}

func (s *ClientServiceSuite) TestCreateClientRequiresCompanyName() {
	_, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Email: "jane@acme.test",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ClientServiceSuite) TestUpdateClientSparse() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName: "Acme Ltd",
		Email:       "jane@acme.test",
	})
	s.NoError(err)

	updated, err := s.service.UpdateClient(s.GetContext(), created.ID, dto.UpdateClientRequest{
		Phone: lo.ToPtr("+254711000000"),
	})
	s.NoError(err)
	s.Equal("Acme Ltd", updated.CompanyName)
	s.Equal("jane@acme.test", updated.Email)
	s.Equal("+254711000000", updated.Phone)
}

func (s *ClientServiceSuite) TestListClientsByStatus() {
	_, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName: "Active Co",
	})
	s.NoError(err)
	_, err = s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName:  "Maybe Co",
		ClientStatus: types.ClientStatusProspect,
	})
	s.NoError(err)

	resp, err := s.service.ListClients(s.GetContext(), &dto.ClientFilter{
		QueryFilter:  *types.NewDefaultQueryFilter(),
		ClientStatus: lo.ToPtr(types.ClientStatusProspect),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Maybe Co", resp.Items[0].CompanyName)
	s.Equal(2, resp.Pagination.Total)
}

func (s *ClientServiceSuite) TestDeleteClient() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName: "Gone Ltd",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteClient(s.GetContext(), created.ID))

	_, err = s.service.GetClient(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ClientServiceSuite) TestGetClientOtherTenant() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		CompanyName: "Acme Ltd",
	})
	s.NoError(err)

	other := testutil.SetupContextForTenant("tenant-other")
	_, err = s.service.GetClient(other, created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
