package main

import (
	"context"
	"time"

	v1 "github.com/bizledger/bizledger/internal/api/v1"
	"github.com/bizledger/bizledger/internal/auth"
	"github.com/bizledger/bizledger/internal/cache"
	"github.com/bizledger/bizledger/internal/config"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/rbac"
	"github.com/bizledger/bizledger/internal/repository"
	"github.com/bizledger/bizledger/internal/router"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/bizledger/bizledger/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// @title BizLedger API
// @version 1.0
// @description Business management API for invoicing, CRM, and HR
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewClient,

			// Auth and permissions
			auth.NewProvider,
			rbac.NewService,

			// Repositories
			repository.NewClientRepository,
			repository.NewProjectRepository,
			repository.NewInvoiceRepository,
			repository.NewEstimateRepository,
			repository.NewReceiptRepository,
			repository.NewPaymentRepository,
			repository.NewExpenseRepository,
			repository.NewProductRepository,
			repository.NewServiceRepository,
			repository.NewOpportunityRepository,
			repository.NewEmployeeRepository,
			repository.NewDepartmentRepository,
			repository.NewAttendanceRepository,
			repository.NewPayrollRepository,
			repository.NewLeaveRepository,
			repository.NewUserRepository,
			repository.NewNotificationRepository,
			repository.NewSettingsRepository,
			repository.NewNumberingRepository,
			repository.NewActivityRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			// Core services
			service.NewAuthService,
			service.NewUserService,
			service.NewSettingsService,

			// Business services
			service.NewClientService,
			service.NewProjectService,
			service.NewInvoiceService,
			service.NewEstimateService,
			service.NewReceiptService,
			service.NewPaymentService,
			service.NewExpenseService,
			service.NewProductService,
			service.NewCatalogService,
			service.NewOpportunityService,

			// HR services
			service.NewEmployeeService,
			service.NewDepartmentService,
			service.NewAttendanceService,
			service.NewPayrollService,
			service.NewLeaveService,

			// Supporting services
			service.NewNotificationService,
			service.NewActivityService,
			service.NewDashboardService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			v1.NewAuthHandler,
			v1.NewClientHandler,
			v1.NewProjectHandler,
			v1.NewInvoiceHandler,
			v1.NewEstimateHandler,
			v1.NewPaymentHandler,
			v1.NewReceiptHandler,
			v1.NewExpenseHandler,
			v1.NewProductHandler,
			v1.NewCatalogServiceHandler,
			v1.NewOpportunityHandler,
			v1.NewEmployeeHandler,
			v1.NewDepartmentHandler,
			v1.NewAttendanceHandler,
			v1.NewPayrollHandler,
			v1.NewLeaveHandler,
			v1.NewUserHandler,
			v1.NewNotificationHandler,
			v1.NewSettingsHandler,
			v1.NewDashboardHandler,

			router.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db postgres.IClient,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return db.Close()
		},
	})
}
