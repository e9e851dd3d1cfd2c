package repository

import (
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
	svc "github.com/bizledger/bizledger/internal/domain/service"
	"github.com/bizledger/bizledger/internal/domain/settings"
	"github.com/bizledger/bizledger/internal/domain/user"
	"github.com/bizledger/bizledger/internal/logger"
	pgclient "github.com/bizledger/bizledger/internal/postgres"
	repo "github.com/bizledger/bizledger/internal/repository/postgres"
)

func NewClientRepository(db pgclient.IClient, log *logger.Logger) client.Repository {
	return repo.NewClientRepository(db, log)
}

func NewProjectRepository(db pgclient.IClient, log *logger.Logger) project.Repository {
	return repo.NewProjectRepository(db, log)
}

func NewInvoiceRepository(db pgclient.IClient, log *logger.Logger) invoice.Repository {
	return repo.NewInvoiceRepository(db, log)
}

func NewEstimateRepository(db pgclient.IClient, log *logger.Logger) estimate.Repository {
	return repo.NewEstimateRepository(db, log)
}

func NewReceiptRepository(db pgclient.IClient, log *logger.Logger) receipt.Repository {
	return repo.NewReceiptRepository(db, log)
}

func NewPaymentRepository(db pgclient.IClient, log *logger.Logger) payment.Repository {
	return repo.NewPaymentRepository(db, log)
}

func NewExpenseRepository(db pgclient.IClient, log *logger.Logger) expense.Repository {
	return repo.NewExpenseRepository(db, log)
}

func NewProductRepository(db pgclient.IClient, log *logger.Logger) product.Repository {
	return repo.NewProductRepository(db, log)
}

func NewServiceRepository(db pgclient.IClient, log *logger.Logger) svc.Repository {
	return repo.NewServiceRepository(db, log)
}

func NewOpportunityRepository(db pgclient.IClient, log *logger.Logger) opportunity.Repository {
	return repo.NewOpportunityRepository(db, log)
}

func NewEmployeeRepository(db pgclient.IClient, log *logger.Logger) employee.Repository {
	return repo.NewEmployeeRepository(db, log)
}

func NewDepartmentRepository(db pgclient.IClient, log *logger.Logger) department.Repository {
	return repo.NewDepartmentRepository(db, log)
}

func NewAttendanceRepository(db pgclient.IClient, log *logger.Logger) attendance.Repository {
	return repo.NewAttendanceRepository(db, log)
}

func NewPayrollRepository(db pgclient.IClient, log *logger.Logger) payroll.Repository {
	return repo.NewPayrollRepository(db, log)
}

func NewLeaveRepository(db pgclient.IClient, log *logger.Logger) leave.Repository {
	return repo.NewLeaveRepository(db, log)
}

func NewUserRepository(db pgclient.IClient, log *logger.Logger) user.Repository {
	return repo.NewUserRepository(db, log)
}

func NewNotificationRepository(db pgclient.IClient, log *logger.Logger) notification.Repository {
	return repo.NewNotificationRepository(db, log)
}

func NewSettingsRepository(db pgclient.IClient, log *logger.Logger) settings.Repository {
	return repo.NewSettingsRepository(db, log)
}

func NewNumberingRepository(db pgclient.IClient, log *logger.Logger) numbering.Repository {
	return repo.NewNumberingRepository(db, log)
}

func NewActivityRepository(db pgclient.IClient, log *logger.Logger) activity.Repository {
	return repo.NewActivityRepository(db, log)
}
