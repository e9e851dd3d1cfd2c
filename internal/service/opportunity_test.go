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

type OpportunityServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  OpportunityService
	testData struct {
		client *client.Client
	}
}

func TestOpportunityService(t *testing.T) {
	suite.Run(t, new(OpportunityServiceSuite))
}

func (s *OpportunityServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *OpportunityServiceSuite) setupService() {
	s.service = NewOpportunityService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		Cache:           s.GetCache(),
		ClientRepo:      s.GetStores().ClientRepo,
		OpportunityRepo: s.GetStores().OpportunityRepo,
		ActivityRepo:    s.GetStores().ActivityRepo,
	})
}

func (s *OpportunityServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_opportunity",
		CompanyName:  "Prospect Ltd",
		ClientStatus: types.ClientStatusProspect,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *OpportunityServiceSuite) TestCreateOpportunity() {
	resp, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title:          "ERP rollout",
		ClientID:       lo.ToPtr(s.testData.client.ID),
		EstimatedValue: 2500000,
		Probability:    30,
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.OpportunityStageLead, resp.Stage)
}

func (s *OpportunityServiceSuite) TestCreateOpportunityUnknownClient() {
	_, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title:    "ERP rollout",
		ClientID: lo.ToPtr("client_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *OpportunityServiceSuite) TestAdvanceStage() {
	created, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title: "ERP rollout",
	})
	s.NoError(err)

	updated, err := s.service.UpdateOpportunity(s.GetContext(), created.ID, dto.UpdateOpportunityRequest{
		Stage:       lo.ToPtr(types.OpportunityStageProposal),
		Probability: lo.ToPtr(60),
	})
	s.NoError(err)
	s.Equal(types.OpportunityStageProposal, updated.Stage)
	s.Equal(60, updated.Probability)
	s.Equal("ERP rollout", updated.Title)
}

func (s *OpportunityServiceSuite) TestUpdateOpportunityInvalidStage() {
	created, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title: "ERP rollout",
	})
	s.NoError(err)

	_, err = s.service.UpdateOpportunity(s.GetContext(), created.ID, dto.UpdateOpportunityRequest{
		Stage: lo.ToPtr(types.OpportunityStage("daydream")),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *OpportunityServiceSuite) TestListOpportunitiesByStage() {
	_, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title: "Lead one",
	})
	s.NoError(err)
	_, err = s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title: "Closed deal",
		Stage: types.OpportunityStageClosedWon,
	})
	s.NoError(err)

	resp, err := s.service.ListOpportunities(s.GetContext(), &dto.OpportunityFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		Stage:       lo.ToPtr(types.OpportunityStageClosedWon),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Closed deal", resp.Items[0].Title)
	s.Equal(2, resp.Pagination.Total)
}

func (s *OpportunityServiceSuite) TestDeleteOpportunity() {
	created, err := s.service.CreateOpportunity(s.GetContext(), dto.CreateOpportunityRequest{
		Title: "Short lived",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteOpportunity(s.GetContext(), created.ID))

	_, err = s.service.GetOpportunity(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
