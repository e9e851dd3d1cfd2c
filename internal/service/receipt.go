package service

import (
	"context"
	"fmt"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/receipt"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ReceiptService issues standalone receipts for money received.
type ReceiptService interface {
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*dto.ReceiptResponse, error)
	GetReceipt(ctx context.Context, id string) (*dto.ReceiptResponse, error)
	ListReceipts(ctx context.Context, filter *dto.ReceiptFilter) (*dto.ListReceiptsResponse, error)
	DeleteReceipt(ctx context.Context, id string) error
}

type receiptService struct {
	ServiceParams
	settings SettingsService
}

func NewReceiptService(params ServiceParams, settings SettingsService) ReceiptService {
	return &receiptService{ServiceParams: params, settings: settings}
}

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	rec := req.ToReceipt(ctx)

	number, err := s.settings.GenerateDocumentNumber(ctx, types.DocumentTypeReceipt)
	if err != nil {
		return nil, err
	}
	rec.ReceiptNumber = number

	if err := s.ReceiptRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "receipt", rec.ID,
		fmt.Sprintf("issued receipt %s", rec.ReceiptNumber))

	return dto.NewReceiptResponse(rec), nil
}

func (s *receiptService) GetReceipt(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	rec, err := s.ReceiptRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewReceiptResponse(rec), nil
}

func (s *receiptService) ListReceipts(ctx context.Context, filter *dto.ReceiptFilter) (*dto.ListReceiptsResponse, error) {
	if filter == nil {
		filter = &dto.ReceiptFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var receipts []*receipt.Receipt
	var err error
	if filter.ClientID != nil {
		receipts, err = s.ReceiptRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	} else {
		receipts, err = s.ReceiptRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.ReceiptRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(receipts, func(rec *receipt.Receipt, _ int) *dto.ReceiptResponse {
		return dto.NewReceiptResponse(rec)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	if err := s.ReceiptRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "receipt", id, "deleted receipt")
	return nil
}
