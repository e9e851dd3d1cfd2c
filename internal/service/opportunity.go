package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/opportunity"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// OpportunityService manages the sales pipeline.
type OpportunityService interface {
	CreateOpportunity(ctx context.Context, req dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error)
	GetOpportunity(ctx context.Context, id string) (*dto.OpportunityResponse, error)
	ListOpportunities(ctx context.Context, filter *dto.OpportunityFilter) (*dto.ListOpportunitiesResponse, error)
	UpdateOpportunity(ctx context.Context, id string, req dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error)
	DeleteOpportunity(ctx context.Context, id string) error
}

type opportunityService struct {
	ServiceParams
}

func NewOpportunityService(params ServiceParams) OpportunityService {
	return &opportunityService{ServiceParams: params}
}

func (s *opportunityService) CreateOpportunity(ctx context.Context, req dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		if _, err := s.ClientRepo.Get(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	o := req.ToOpportunity(ctx)
	if err := s.OpportunityRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "opportunity", o.ID,
		fmt.Sprintf("created opportunity %s", o.Title))

	return dto.NewOpportunityResponse(o), nil
}

func (s *opportunityService) GetOpportunity(ctx context.Context, id string) (*dto.OpportunityResponse, error) {
	o, err := s.OpportunityRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewOpportunityResponse(o), nil
}

func (s *opportunityService) ListOpportunities(ctx context.Context, filter *dto.OpportunityFilter) (*dto.ListOpportunitiesResponse, error) {
	if filter == nil {
		filter = &dto.OpportunityFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var opportunities []*opportunity.Opportunity
	var err error
	switch {
	case filter.Stage != nil:
		opportunities, err = s.OpportunityRepo.ListByStage(ctx, *filter.Stage, &filter.QueryFilter)
	case filter.ClientID != nil:
		opportunities, err = s.OpportunityRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	default:
		opportunities, err = s.OpportunityRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.OpportunityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(opportunities, func(o *opportunity.Opportunity, _ int) *dto.OpportunityResponse {
		return dto.NewOpportunityResponse(o)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *opportunityService) UpdateOpportunity(ctx context.Context, id string, req dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OpportunityRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(o)
	o.UpdatedAt = time.Now().UTC()
	o.UpdatedBy = types.GetUserID(ctx)

	if err := s.OpportunityRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "opportunity", o.ID,
		fmt.Sprintf("updated opportunity %s", o.Title))

	return dto.NewOpportunityResponse(o), nil
}

func (s *opportunityService) DeleteOpportunity(ctx context.Context, id string) error {
	if err := s.OpportunityRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "opportunity", id, "deleted opportunity")
	return nil
}
