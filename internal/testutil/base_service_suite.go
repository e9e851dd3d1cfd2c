package testutil

import (
	"context"
	"time"

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
	domainService "github.com/bizledger/bizledger/internal/domain/service"
	"github.com/bizledger/bizledger/internal/domain/settings"
	"github.com/bizledger/bizledger/internal/domain/user"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds the repository interfaces backed by in-memory stores
type Stores struct {
	ClientRepo       client.Repository
	ProjectRepo      project.Repository
	InvoiceRepo      invoice.Repository
	EstimateRepo     estimate.Repository
	PaymentRepo      payment.Repository
	ReceiptRepo      receipt.Repository
	ExpenseRepo      expense.Repository
	ProductRepo      product.Repository
	ServiceRepo      domainService.Repository
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

// BaseServiceTestSuite provides common functionality for service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	auth   *auth.Provider
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.auth = auth.NewProvider(cfg)
	s.db = NewMockPostgresClient(s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.cache = cache.NewInMemoryCache()
	s.setupStores()
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		ClientRepo:       NewInMemoryClientStore(),
		ProjectRepo:      NewInMemoryProjectStore(),
		InvoiceRepo:      NewInMemoryInvoiceStore(),
		EstimateRepo:     NewInMemoryEstimateStore(),
		PaymentRepo:      NewInMemoryPaymentStore(),
		ReceiptRepo:      NewInMemoryReceiptStore(),
		ExpenseRepo:      NewInMemoryExpenseStore(),
		ProductRepo:      NewInMemoryProductStore(),
		ServiceRepo:      NewInMemoryCatalogServiceStore(),
		OpportunityRepo:  NewInMemoryOpportunityStore(),
		EmployeeRepo:     NewInMemoryEmployeeStore(),
		DepartmentRepo:   NewInMemoryDepartmentStore(),
		AttendanceRepo:   NewInMemoryAttendanceStore(),
		PayrollRepo:      NewInMemoryPayrollStore(),
		LeaveRepo:        NewInMemoryLeaveStore(),
		UserRepo:         NewInMemoryUserStore(),
		NotificationRepo: NewInMemoryNotificationStore(),
		SettingsRepo:     NewInMemorySettingsStore(),
		NumberingRepo:    NewInMemoryNumberingStore(),
		ActivityRepo:     NewInMemoryActivityStore(),
	}
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext overrides the test context, for role and tenant scenarios
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetAuthProvider returns the test token provider
func (s *BaseServiceTestSuite) GetAuthProvider() *auth.Provider {
	return s.auth
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
