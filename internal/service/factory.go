package service

import (
	"github.com/bizledger/bizledger/internal/auth"
	"github.com/bizledger/bizledger/internal/cache"
	"github.com/bizledger/bizledger/internal/config"
	"github.com/bizledger/bizledger/internal/domain/activity"
	"github.com/bizledger/bizledger/internal/domain/attendance"
	"github.com/bizledger/bizledger/internal/domain/client"
	"github.com/bizledger/bizledger/internal/domain/department"
	"github.com/bizledger/bizledger/internal/domain/employee"
	"github.com/bizledger/bizledger/internal/domain/estimate"
	"github.com/bizledger/bizledger/internal/domain/expense"
	"github.com/bizledger/bizledger/internal/domain/invoice"
	"github.com/bizledger/bizledger/internal/domain/leave"
	"github.com/bizledger/bizledger/internal/domain/notification"
	"github.com/bizledger/bizledger/internal/domain/numbering"
	"github.com/bizledger/bizledger/internal/domain/opportunity"
	"github.com/bizledger/bizledger/internal/domain/payment"
	"github.com/bizledger/bizledger/internal/domain/payroll"
	"github.com/bizledger/bizledger/internal/domain/product"
	"github.com/bizledger/bizledger/internal/domain/project"
	"github.com/bizledger/bizledger/internal/domain/receipt"
	catalog "github.com/bizledger/bizledger/internal/domain/service"
	"github.com/bizledger/bizledger/internal/domain/settings"
	"github.com/bizledger/bizledger/internal/domain/user"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"go.uber.org/fx"
)

// ServiceParams bundles common dependencies injected into services
type ServiceParams struct {
	fx.In

	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache
	Auth   *auth.Provider

	// Repositories
	ClientRepo       client.Repository
	ProjectRepo      project.Repository
	InvoiceRepo      invoice.Repository
	EstimateRepo     estimate.Repository
	ReceiptRepo      receipt.Repository
	PaymentRepo      payment.Repository
	ExpenseRepo      expense.Repository
	ProductRepo      product.Repository
	ServiceRepo      catalog.Repository
	OpportunityRepo  opportunity.Repository
	EmployeeRepo     employee.Repository
	DepartmentRepo   department.Repository
	AttendanceRepo   attendance.Repository
	PayrollRepo      payroll.Repository
	LeaveRepo        leave.Repository
	UserRepo         user.Repository
	NotificationRepo notification.Repository
	SettingsRepo     settings.Repository
	NumberingRepo    numbering.Repository
	ActivityRepo     activity.Repository
}
