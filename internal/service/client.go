package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/client"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ClientService manages customer accounts.
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter *dto.ClientFilter) (*dto.ListClientsResponse, error)
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{ServiceParams: params}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient(ctx)
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "client", c.ID,
		fmt.Sprintf("created client %s", c.CompanyName))

	return dto.NewClientResponse(c), nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

func (s *clientService) ListClients(ctx context.Context, filter *dto.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = &dto.ClientFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var clients []*client.Client
	var err error
	if filter.ClientStatus != nil {
		clients, err = s.ClientRepo.ListByStatus(ctx, *filter.ClientStatus, &filter.QueryFilter)
	} else {
		clients, err = s.ClientRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.ClientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(clients, func(c *client.Client, _ int) *dto.ClientResponse {
		return dto.NewClientResponse(c)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(c)
	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	if err := s.ClientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "client", c.ID,
		fmt.Sprintf("updated client %s", c.CompanyName))

	return dto.NewClientResponse(c), nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "client", id, "deleted client")
	return nil
}
