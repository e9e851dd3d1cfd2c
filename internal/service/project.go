package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/project"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ProjectService manages client work engagements.
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, filter *dto.ProjectFilter) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{ServiceParams: params}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Reject projects for clients that do not exist.
	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	p := req.ToProject(ctx)
	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "project", p.ID,
		fmt.Sprintf("created project %s", p.Name))

	return dto.NewProjectResponse(p), nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) ListProjects(ctx context.Context, filter *dto.ProjectFilter) (*dto.ListProjectsResponse, error) {
	if filter == nil {
		filter = &dto.ProjectFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var projects []*project.Project
	var err error
	switch {
	case filter.ClientID != nil:
		projects, err = s.ProjectRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	case filter.Status != nil:
		projects, err = s.ProjectRepo.ListByStatus(ctx, *filter.Status, &filter.QueryFilter)
	default:
		projects, err = s.ProjectRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.ProjectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(projects, func(p *project.Project, _ int) *dto.ProjectResponse {
		return dto.NewProjectResponse(p)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(p)
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProjectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "project", p.ID,
		fmt.Sprintf("updated project %s", p.Name))

	return dto.NewProjectResponse(p), nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.ProjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "project", id, "deleted project")
	return nil
}
