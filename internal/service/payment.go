package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/payment"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// PaymentService records money received against invoices and keeps the
// invoice balance in sync.
type PaymentService interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, filter *dto.PaymentFilter) (*dto.ListPaymentsResponse, error)
	DeletePayment(ctx context.Context, id string) error
}

type paymentService struct {
	ServiceParams
	settings SettingsService
}

func NewPaymentService(params ServiceParams, settings SettingsService) PaymentService {
	return &paymentService{ServiceParams: params, settings: settings}
}

// CreatePayment writes the payment, rolls the amount into the invoice
// and optionally issues a receipt, all in one transaction.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusCancelled {
		return nil, ierr.NewError("invoice cancelled").
			WithHint("Payments cannot be recorded against a cancelled invoice").
			Mark(ierr.ErrInvalidOperation)
	}
	if req.Amount > inv.Outstanding() {
		return nil, ierr.NewError("payment exceeds outstanding balance").
			WithHintf("Outstanding balance is %d", inv.Outstanding()).
			WithReportableDetails(map[string]any{
				"outstanding": inv.Outstanding(),
				"amount":      req.Amount,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	p := req.ToPayment(ctx)
	p.ClientID = inv.ClientID

	var resp *dto.PaymentResponse
	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if cerr := s.PaymentRepo.Create(txCtx, p); cerr != nil {
			return cerr
		}

		inv.PaidAmount += p.Amount
		if inv.PaidAmount >= inv.Total {
			inv.InvoiceStatus = types.InvoiceStatusPaid
		} else {
			inv.InvoiceStatus = types.InvoiceStatusPartial
		}
		inv.UpdatedAt = time.Now().UTC()
		inv.UpdatedBy = types.GetUserID(txCtx)
		if uerr := s.InvoiceRepo.Update(txCtx, inv); uerr != nil {
			return uerr
		}

		resp = dto.NewPaymentResponse(p)

		if req.IssueReceipt {
			recReq := dto.CreateReceiptRequest{
				ClientID:      inv.ClientID,
				PaymentID:     &p.ID,
				Amount:        p.Amount,
				PaymentMethod: p.PaymentMethod,
				ReceiptDate:   p.PaymentDate,
			}
			rec := recReq.ToReceipt(txCtx)

			number, nerr := s.settings.GenerateDocumentNumber(txCtx, types.DocumentTypeReceipt)
			if nerr != nil {
				return nerr
			}
			rec.ReceiptNumber = number

			if cerr := s.ReceiptRepo.Create(txCtx, rec); cerr != nil {
				return cerr
			}
			resp.Receipt = dto.NewReceiptResponse(rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.ServiceParams, "create", "payment", p.ID,
		fmt.Sprintf("recorded payment of %d against invoice %s", p.Amount, inv.InvoiceNumber))

	return resp, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentResponse(p), nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter *dto.PaymentFilter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = &dto.PaymentFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var payments []*payment.Payment
	var err error
	switch {
	case filter.InvoiceID != nil:
		payments, err = s.PaymentRepo.ListByInvoice(ctx, *filter.InvoiceID, &filter.QueryFilter)
	case filter.ClientID != nil:
		payments, err = s.PaymentRepo.ListByClient(ctx, *filter.ClientID, &filter.QueryFilter)
	default:
		payments, err = s.PaymentRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.PaymentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(payments, func(p *payment.Payment, _ int) *dto.PaymentResponse {
		return dto.NewPaymentResponse(p)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// DeletePayment removes the payment and restores the invoice balance.
func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	inv, err := s.InvoiceRepo.Get(ctx, p.InvoiceID)
	if err != nil {
		return err
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if derr := s.PaymentRepo.Delete(txCtx, id); derr != nil {
			return derr
		}

		inv.PaidAmount -= p.Amount
		if inv.PaidAmount < 0 {
			inv.PaidAmount = 0
		}
		switch {
		case inv.PaidAmount == 0:
			inv.InvoiceStatus = types.InvoiceStatusSent
		case inv.PaidAmount < inv.Total:
			inv.InvoiceStatus = types.InvoiceStatusPartial
		}
		inv.UpdatedAt = time.Now().UTC()
		inv.UpdatedBy = types.GetUserID(txCtx)
		return s.InvoiceRepo.Update(txCtx, inv)
	})
	if err != nil {
		return err
	}

	recordActivity(ctx, s.ServiceParams, "delete", "payment", id,
		fmt.Sprintf("deleted payment of %d against invoice %s", p.Amount, inv.InvoiceNumber))
	return nil
}
