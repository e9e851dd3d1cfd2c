package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/estimate"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// EstimateService manages quotes offered before work begins.
type EstimateService interface {
	CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*dto.EstimateResponse, error)
	GetEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error)
	ListEstimates(ctx context.Context, filter *dto.EstimateFilter) (*dto.ListEstimatesResponse, error)
	UpdateEstimate(ctx context.Context, id string, req dto.UpdateEstimateRequest) (*dto.EstimateResponse, error)
	DeleteEstimate(ctx context.Context, id string) error

	// ConvertToInvoice creates an invoice from an accepted estimate and
	// marks the estimate converted.
	ConvertToInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
}

type estimateService struct {
	ServiceParams
	settings SettingsService
}

func NewEstimateService(params ServiceParams, settings SettingsService) EstimateService {
	return &estimateService{ServiceParams: params, settings: settings}
}

func (s *estimateService) CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	e := req.ToEstimate(ctx)

	number, err := s.settings.GenerateDocumentNumber(ctx, types.DocumentTypeEstimate)
	if err != nil {
		return nil, err
	}
	e.EstimateNumber = number

	if err := s.EstimateRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "estimate", e.ID,
		fmt.Sprintf("created estimate %s", e.EstimateNumber))

	return dto.NewEstimateResponse(e), nil
}

func (s *estimateService) GetEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewEstimateResponse(e), nil
}

func (s *estimateService) ListEstimates(ctx context.Context, filter *dto.EstimateFilter) (*dto.ListEstimatesResponse, error) {
	if filter == nil {
		filter = &dto.EstimateFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var estimates []*estimate.Estimate
	var err error
	switch {
	case filter.ClientID != nil:
		estimates, err = s.EstimateRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	case filter.Status != nil:
		estimates, err = s.EstimateRepo.ListByStatus(ctx, *filter.Status, &filter.QueryFilter)
	default:
		estimates, err = s.EstimateRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.EstimateRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(estimates, func(e *estimate.Estimate, _ int) *dto.EstimateResponse {
		return dto.NewEstimateResponse(e)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *estimateService) UpdateEstimate(ctx context.Context, id string, req dto.UpdateEstimateRequest) (*dto.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	e.UpdatedBy = types.GetUserID(ctx)

	if err := s.EstimateRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "estimate", e.ID,
		fmt.Sprintf("updated estimate %s", e.EstimateNumber))

	return dto.NewEstimateResponse(e), nil
}

func (s *estimateService) DeleteEstimate(ctx context.Context, id string) error {
	if err := s.EstimateRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "estimate", id, "deleted estimate")
	return nil
}

func (s *estimateService) ConvertToInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.EstimateStatus != types.EstimateStatusAccepted {
		return nil, ierr.NewError("estimate not accepted").
			WithHint("Only accepted estimates can be converted to invoices").
			WithReportableDetails(map[string]any{"estimate_status": e.EstimateStatus}).
			Mark(ierr.ErrInvalidOperation)
	}

	req := dto.CreateInvoiceRequest{
		ClientID:       e.ClientID,
		Title:          e.Title,
		IssueDate:      time.Now().UTC(),
		DueDate:        time.Now().UTC().AddDate(0, 1, 0),
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		DiscountAmount: e.DiscountAmount,
		Notes:          e.Notes,
		Terms:          e.Terms,
	}

	var resp *dto.InvoiceResponse
	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		inv := req.ToInvoice(txCtx)
		number, nerr := s.settings.GenerateDocumentNumber(txCtx, types.DocumentTypeInvoice)
		if nerr != nil {
			return nerr
		}
		inv.InvoiceNumber = number

		if cerr := s.InvoiceRepo.Create(txCtx, inv); cerr != nil {
			return cerr
		}

		e.EstimateStatus = types.EstimateStatusConverted
		e.UpdatedAt = time.Now().UTC()
		e.UpdatedBy = types.GetUserID(txCtx)
		if uerr := s.EstimateRepo.Update(txCtx, e); uerr != nil {
			return uerr
		}

		resp = dto.NewInvoiceResponse(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "convert", "estimate", e.ID,
		fmt.Sprintf("converted estimate %s to invoice %s", e.EstimateNumber, resp.InvoiceNumber))

	return resp, nil
}
