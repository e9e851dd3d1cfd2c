package service

import (
	"context"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/activity"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates the home page snapshot.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{ServiceParams: params}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	totalClients, err := s.ClientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = totalClients

	totalEmployees, err := s.EmployeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalEmployees = totalEmployees

	activeProjects, err := s.ProjectRepo.ListByStatus(ctx, types.ProjectStatusActive, types.NewNoLimitQueryFilter())
	if err != nil {
		return nil, err
	}
	stats.ActiveProjects = len(activeProjects)

	invoices, err := s.InvoiceRepo.List(ctx, types.NewNoLimitQueryFilter())
	if err != nil {
		return nil, err
	}

	var invoiced, collected int64
	for _, inv := range invoices {
		switch inv.InvoiceStatus {
		case types.InvoiceStatusCancelled:
			continue
		case types.InvoiceStatusSent, types.InvoiceStatusPartial, types.InvoiceStatusOverdue:
			stats.PendingInvoices++
		}
		invoiced += inv.Total
		collected += inv.PaidAmount
		stats.OutstandingAmount += inv.Outstanding()
	}
	stats.TotalRevenue = collected

	expenses, err := s.ExpenseRepo.List(ctx, types.NewNoLimitQueryFilter())
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		if e.ExpenseStatus == types.ExpenseStatusRejected {
			continue
		}
		stats.TotalExpenses += e.Amount
	}

	stats.CollectionRate = collectionRate(collected, invoiced)

	recent, err := s.ActivityRepo.List(ctx, types.NewDefaultQueryFilter())
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = lo.Map(recent, func(a *activity.Activity, _ int) *dto.ActivityResponse {
		return dto.NewActivityResponse(a)
	})

	return stats, nil
}

// collectionRate returns collected/invoiced as a two decimal ratio,
// "0.00" when nothing has been invoiced.
func collectionRate(collected, invoiced int64) string {
	if invoiced == 0 {
		return "0.00"
	}
	return decimal.NewFromInt(collected).
		Div(decimal.NewFromInt(invoiced)).
		Round(2).
		StringFixed(2)
}
