package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	catalog "github.com/bizledger/bizledger/internal/domain/service"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// CatalogService manages the billable services catalog.
type CatalogService interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id string) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, filter *types.QueryFilter) (*dto.ListServicesResponse, error)
	UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc := req.ToService(ctx)
	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "service", svc.ID,
		fmt.Sprintf("created service %s", svc.Name))

	return dto.NewServiceResponse(svc), nil
}

func (s *catalogService) GetService(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewServiceResponse(svc), nil
}

func (s *catalogService) ListServices(ctx context.Context, filter *types.QueryFilter) (*dto.ListServicesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	services, err := s.ServiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ServiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(services, func(svc *catalog.Service, _ int) *dto.ServiceResponse {
		return dto.NewServiceResponse(svc)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(svc)
	svc.UpdatedAt = time.Now().UTC()
	svc.UpdatedBy = types.GetUserID(ctx)

	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "service", svc.ID,
		fmt.Sprintf("updated service %s", svc.Name))

	return dto.NewServiceResponse(svc), nil
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.ServiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "service", id, "deleted service")
	return nil
}
