package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/invoice"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// InvoiceService manages client billing documents.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter *dto.InvoiceFilter) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
	MarkOverdue(ctx context.Context) (int, error)
}

type invoiceService struct {
	ServiceParams
	settings SettingsService
}

func NewInvoiceService(params ServiceParams, settings SettingsService) InvoiceService {
	return &invoiceService{ServiceParams: params, settings: settings}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx)

	number, err := s.settings.GenerateDocumentNumber(ctx, types.DocumentTypeInvoice)
	if err != nil {
		return nil, err
	}
	inv.InvoiceNumber = number

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "invoice", inv.ID,
		fmt.Sprintf("created invoice %s", inv.InvoiceNumber))

	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *dto.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = &dto.InvoiceFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var invoices []*invoice.Invoice
	var err error
	switch {
	case filter.ClientID != nil:
		invoices, err = s.InvoiceRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	case filter.Status != nil:
		invoices, err = s.InvoiceRepo.ListByStatus(ctx, *filter.Status, &filter.QueryFilter)
	default:
		invoices, err = s.InvoiceRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.InvoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return dto.NewInvoiceResponse(inv)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusPaid && req.Status == nil {
		return nil, ierr.NewError("invoice already paid").
			WithHint("Paid invoices cannot be edited").
			Mark(ierr.ErrInvalidOperation)
	}

	req.Apply(inv)
	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "update", "invoice", inv.ID,
		fmt.Sprintf("updated invoice %s", inv.InvoiceNumber))

	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if inv.PaidAmount > 0 {
		return ierr.NewError("invoice has recorded payments").
			WithHint("Delete the payments before deleting the invoice").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.InvoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "invoice", id,
		fmt.Sprintf("deleted invoice %s", inv.InvoiceNumber))
	return nil
}

// MarkOverdue flips sent invoices past their due date to overdue and
// returns how many were updated.
func (s *invoiceService) MarkOverdue(ctx context.Context) (int, error) {
	sent, err := s.InvoiceRepo.ListByStatus(ctx, types.InvoiceStatusSent, types.NewNoLimitQueryFilter())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	updated := 0
	for _, inv := range sent {
		if inv.DueDate.After(now) {
			continue
		}
		inv.InvoiceStatus = types.InvoiceStatusOverdue
		inv.UpdatedAt = now
		if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
