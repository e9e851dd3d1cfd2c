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

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ProjectService
	testData struct {
		client *client.Client
	}
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *ProjectServiceSuite) setupService() {
	s.service = NewProjectService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		ClientRepo:   s.GetStores().ClientRepo,
		ProjectRepo:  s.GetStores().ProjectRepo,
		ActivityRepo: s.GetStores().ActivityRepo,
	})
}

func (s *ProjectServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_test_project",
		CompanyName:  "Acme Ltd",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *ProjectServiceSuite) TestCreateProject() {
	resp, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website revamp",
		Budget:   1000000,
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.ProjectStatusPlanning, resp.ProjectStatus)
	s.Equal(types.ProjectPriorityMedium, resp.Priority)
}

func (s *ProjectServiceSuite) TestCreateProjectUnknownClient() {
	_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: "client_missing",
		Name:     "Website revamp",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestUpdateProjectProgress() {
	created, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website revamp",
	})
	s.NoError(err)

	updated, err := s.service.UpdateProject(s.GetContext(), created.ID, dto.UpdateProjectRequest{
		Status:   lo.ToPtr(types.ProjectStatusActive),
		Progress: lo.ToPtr(40),
	})
	s.NoError(err)
	s.Equal(types.ProjectStatusActive, updated.ProjectStatus)
	s.Equal(40, updated.Progress)
	s.Equal("Website revamp", updated.Name)
}

func (s *ProjectServiceSuite) TestListProjectsByClient() {
	_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website revamp",
	})
	s.NoError(err)

	resp, err := s.service.ListProjects(s.GetContext(), &dto.ProjectFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		ClientID:    lo.ToPtr(s.testData.client.ID),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)

	resp, err = s.service.ListProjects(s.GetContext(), &dto.ProjectFilter{
		QueryFilter: *types.NewDefaultQueryFilter(),
		ClientID:    lo.ToPtr("client_other"),
	})
	s.NoError(err)
	s.Empty(resp.Items)
}

func (s *ProjectServiceSuite) TestDeleteProject() {
	created, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Short engagement",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteProject(s.GetContext(), created.ID))

	_, err = s.service.GetProject(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
