package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/project"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateProjectRequest struct {
	ClientID    string                `json:"client_id" validate:"required"`
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description"`
	Status      types.ProjectStatus   `json:"project_status" validate:"omitempty"`
	Priority    types.ProjectPriority `json:"priority" validate:"omitempty"`
	StartDate   *time.Time            `json:"start_date,omitempty"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
	Budget      int64                 `json:"budget" validate:"omitempty,min=0"`
	Progress    int                   `json:"progress" validate:"omitempty,min=0,max=100"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != "" {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	status := r.Status
	if status == "" {
		status = types.ProjectStatusPlanning
	}
	priority := r.Priority
	if priority == "" {
		priority = types.ProjectPriorityMedium
	}
	return &project.Project{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		ClientID:      r.ClientID,
		Name:          r.Name,
		Description:   r.Description,
		ProjectStatus: status,
		Priority:      priority,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Budget:        r.Budget,
		Progress:      r.Progress,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateProjectRequest struct {
	ClientID    *string                `json:"client_id,omitempty"`
	Name        *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string                `json:"description,omitempty"`
	Status      *types.ProjectStatus   `json:"project_status,omitempty"`
	Priority    *types.ProjectPriority `json:"priority,omitempty"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	Budget      *int64                 `json:"budget,omitempty" validate:"omitempty,min=0"`
	Progress    *int                   `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *UpdateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != nil {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *UpdateProjectRequest) Apply(p *project.Project) {
	if r.ClientID != nil {
		p.ClientID = *r.ClientID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Status != nil {
		p.ProjectStatus = *r.Status
	}
	if r.Priority != nil {
		p.Priority = *r.Priority
	}
	if r.StartDate != nil {
		p.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = r.EndDate
	}
	if r.Budget != nil {
		p.Budget = *r.Budget
	}
	if r.Progress != nil {
		p.Progress = *r.Progress
	}
}

type ProjectResponse struct {
	*project.Project
}

type ListProjectsResponse = types.ListResponse[*ProjectResponse]

func NewProjectResponse(p *project.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{Project: p}
}

type ProjectFilter struct {
	types.QueryFilter
	ClientID *string              `json:"client_id,omitempty" form:"client_id"`
	Status   *types.ProjectStatus `json:"project_status,omitempty" form:"project_status"`
}

func (f *ProjectFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
