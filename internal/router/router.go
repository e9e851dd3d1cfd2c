package router

import (
	v1 "github.com/bizledger/bizledger/internal/api/v1"
	"github.com/bizledger/bizledger/internal/auth"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/rbac"
	"github.com/bizledger/bizledger/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Handlers collects every versioned API handler for route registration.
type Handlers struct {
	fx.In

	Auth          *v1.AuthHandler
	Client        *v1.ClientHandler
	Project       *v1.ProjectHandler
	Invoice       *v1.InvoiceHandler
	Estimate      *v1.EstimateHandler
	Payment       *v1.PaymentHandler
	Receipt       *v1.ReceiptHandler
	Expense       *v1.ExpenseHandler
	Product       *v1.ProductHandler
	Catalog       *v1.CatalogServiceHandler
	Opportunity   *v1.OpportunityHandler
	Employee      *v1.EmployeeHandler
	Department    *v1.DepartmentHandler
	Attendance    *v1.AttendanceHandler
	Payroll       *v1.PayrollHandler
	Leave         *v1.LeaveHandler
	User          *v1.UserHandler
	Notification  *v1.NotificationHandler
	Settings      *v1.SettingsHandler
	Dashboard     *v1.DashboardHandler
}

func NewRouter(handlers Handlers, provider *auth.Provider, rbacService *rbac.Service, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", v1.Health)

	public := router.Group("/v1")
	public.POST("/auth/login", handlers.Auth.Login)

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(provider, log))

	perm := middleware.NewPermissionMiddleware(rbacService, log)
	registerV1Routes(private, handlers, perm)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, perm *middleware.PermissionMiddleware) {
	// Current user routes need authentication only
	router.GET("/auth/me", handlers.Auth.Me)
	router.PUT("/auth/me", handlers.Auth.UpdateProfile)
	router.PUT("/auth/password", handlers.Auth.ChangePassword)

	clients := router.Group("/clients")
	{
		clients.POST("", perm.RequirePermission("clients", rbac.ActionCreate), handlers.Client.CreateClient)
		clients.GET("", perm.RequirePermission("clients", rbac.ActionRead), handlers.Client.ListClients)
		clients.GET("/:id", perm.RequirePermission("clients", rbac.ActionRead), handlers.Client.GetClient)
		clients.PUT("/:id", perm.RequirePermission("clients", rbac.ActionUpdate), handlers.Client.UpdateClient)
		clients.DELETE("/:id", perm.RequirePermission("clients", rbac.ActionDelete), handlers.Client.DeleteClient)
	}

	projects := router.Group("/projects")
	{
		projects.POST("", perm.RequirePermission("projects", rbac.ActionCreate), handlers.Project.CreateProject)
		projects.GET("", perm.RequirePermission("projects", rbac.ActionRead), handlers.Project.ListProjects)
		projects.GET("/:id", perm.RequirePermission("projects", rbac.ActionRead), handlers.Project.GetProject)
		projects.PUT("/:id", perm.RequirePermission("projects", rbac.ActionUpdate), handlers.Project.UpdateProject)
		projects.DELETE("/:id", perm.RequirePermission("projects", rbac.ActionDelete), handlers.Project.DeleteProject)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", perm.RequirePermission("invoices", rbac.ActionCreate), handlers.Invoice.CreateInvoice)
		invoices.GET("", perm.RequirePermission("invoices", rbac.ActionRead), handlers.Invoice.ListInvoices)
		invoices.POST("/mark-overdue", perm.RequirePermission("invoices", rbac.ActionUpdate), handlers.Invoice.MarkOverdue)
		invoices.GET("/:id", perm.RequirePermission("invoices", rbac.ActionRead), handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", perm.RequirePermission("invoices", rbac.ActionUpdate), handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", perm.RequirePermission("invoices", rbac.ActionDelete), handlers.Invoice.DeleteInvoice)
	}

	estimates := router.Group("/estimates")
	{
		estimates.POST("", perm.RequirePermission("estimates", rbac.ActionCreate), handlers.Estimate.CreateEstimate)
		estimates.GET("", perm.RequirePermission("estimates", rbac.ActionRead), handlers.Estimate.ListEstimates)
		estimates.GET("/:id", perm.RequirePermission("estimates", rbac.ActionRead), handlers.Estimate.GetEstimate)
		estimates.PUT("/:id", perm.RequirePermission("estimates", rbac.ActionUpdate), handlers.Estimate.UpdateEstimate)
		estimates.DELETE("/:id", perm.RequirePermission("estimates", rbac.ActionDelete), handlers.Estimate.DeleteEstimate)
		estimates.POST("/:id/convert", perm.RequirePermission("invoices", rbac.ActionCreate), handlers.Estimate.ConvertToInvoice)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", perm.RequirePermission("payments", rbac.ActionCreate), handlers.Payment.CreatePayment)
		payments.GET("", perm.RequirePermission("payments", rbac.ActionRead), handlers.Payment.ListPayments)
		payments.GET("/:id", perm.RequirePermission("payments", rbac.ActionRead), handlers.Payment.GetPayment)
		payments.DELETE("/:id", perm.RequirePermission("payments", rbac.ActionDelete), handlers.Payment.DeletePayment)
	}

	receipts := router.Group("/receipts")
	{
		receipts.POST("", perm.RequirePermission("receipts", rbac.ActionCreate), handlers.Receipt.CreateReceipt)
		receipts.GET("", perm.RequirePermission("receipts", rbac.ActionRead), handlers.Receipt.ListReceipts)
		receipts.GET("/:id", perm.RequirePermission("receipts", rbac.ActionRead), handlers.Receipt.GetReceipt)
		receipts.DELETE("/:id", perm.RequirePermission("receipts", rbac.ActionDelete), handlers.Receipt.DeleteReceipt)
	}

	expenses := router.Group("/expenses")
	{
		expenses.POST("", perm.RequirePermission("expenses", rbac.ActionCreate), handlers.Expense.CreateExpense)
		expenses.GET("", perm.RequirePermission("expenses", rbac.ActionRead), handlers.Expense.ListExpenses)
		expenses.GET("/:id", perm.RequirePermission("expenses", rbac.ActionRead), handlers.Expense.GetExpense)
		expenses.PUT("/:id", perm.RequirePermission("expenses", rbac.ActionUpdate), handlers.Expense.UpdateExpense)
		expenses.DELETE("/:id", perm.RequirePermission("expenses", rbac.ActionDelete), handlers.Expense.DeleteExpense)
		expenses.POST("/:id/approve", perm.RequirePermission("expenses", rbac.ActionUpdate), handlers.Expense.ApproveExpense)
		expenses.POST("/:id/reject", perm.RequirePermission("expenses", rbac.ActionUpdate), handlers.Expense.RejectExpense)
		expenses.POST("/:id/pay", perm.RequirePermission("expenses", rbac.ActionUpdate), handlers.Expense.MarkExpensePaid)
	}

	products := router.Group("/products")
	{
		products.POST("", perm.RequirePermission("products", rbac.ActionCreate), handlers.Product.CreateProduct)
		products.GET("", perm.RequirePermission("products", rbac.ActionRead), handlers.Product.ListProducts)
		products.GET("/:id", perm.RequirePermission("products", rbac.ActionRead), handlers.Product.GetProduct)
		products.PUT("/:id", perm.RequirePermission("products", rbac.ActionUpdate), handlers.Product.UpdateProduct)
		products.DELETE("/:id", perm.RequirePermission("products", rbac.ActionDelete), handlers.Product.DeleteProduct)
		products.POST("/:id/stock", perm.RequirePermission("products", rbac.ActionUpdate), handlers.Product.AdjustStock)
	}

	services := router.Group("/services")
	{
		services.POST("", perm.RequirePermission("services", rbac.ActionCreate), handlers.Catalog.CreateService)
		services.GET("", perm.RequirePermission("services", rbac.ActionRead), handlers.Catalog.ListServices)
		services.GET("/:id", perm.RequirePermission("services", rbac.ActionRead), handlers.Catalog.GetService)
		services.PUT("/:id", perm.RequirePermission("services", rbac.ActionUpdate), handlers.Catalog.UpdateService)
		services.DELETE("/:id", perm.RequirePermission("services", rbac.ActionDelete), handlers.Catalog.DeleteService)
	}

	opportunities := router.Group("/opportunities")
	{
		opportunities.POST("", perm.RequirePermission("opportunities", rbac.ActionCreate), handlers.Opportunity.CreateOpportunity)
		opportunities.GET("", perm.RequirePermission("opportunities", rbac.ActionRead), handlers.Opportunity.ListOpportunities)
		opportunities.GET("/:id", perm.RequirePermission("opportunities", rbac.ActionRead), handlers.Opportunity.GetOpportunity)
		opportunities.PUT("/:id", perm.RequirePermission("opportunities", rbac.ActionUpdate), handlers.Opportunity.UpdateOpportunity)
		opportunities.DELETE("/:id", perm.RequirePermission("opportunities", rbac.ActionDelete), handlers.Opportunity.DeleteOpportunity)
	}

	employees := router.Group("/employees")
	{
		employees.POST("", perm.RequirePermission("employees", rbac.ActionCreate), handlers.Employee.CreateEmployee)
		employees.GET("", perm.RequirePermission("employees", rbac.ActionRead), handlers.Employee.ListEmployees)
		employees.GET("/:id", perm.RequirePermission("employees", rbac.ActionRead), handlers.Employee.GetEmployee)
		employees.PUT("/:id", perm.RequirePermission("employees", rbac.ActionUpdate), handlers.Employee.UpdateEmployee)
		employees.DELETE("/:id", perm.RequirePermission("employees", rbac.ActionDelete), handlers.Employee.DeleteEmployee)
	}

	departments := router.Group("/departments")
	{
		departments.POST("", perm.RequirePermission("departments", rbac.ActionCreate), handlers.Department.CreateDepartment)
		departments.GET("", perm.RequirePermission("departments", rbac.ActionRead), handlers.Department.ListDepartments)
		departments.GET("/:id", perm.RequirePermission("departments", rbac.ActionRead), handlers.Department.GetDepartment)
		departments.PUT("/:id", perm.RequirePermission("departments", rbac.ActionUpdate), handlers.Department.UpdateDepartment)
		departments.DELETE("/:id", perm.RequirePermission("departments", rbac.ActionDelete), handlers.Department.DeleteDepartment)
	}

	attendance := router.Group("/attendance")
	{
		attendance.POST("", perm.RequirePermission("attendance", rbac.ActionCreate), handlers.Attendance.CreateAttendance)
		attendance.GET("", perm.RequirePermission("attendance", rbac.ActionRead), handlers.Attendance.ListAttendance)
		attendance.GET("/:id", perm.RequirePermission("attendance", rbac.ActionRead), handlers.Attendance.GetAttendance)
		attendance.PUT("/:id", perm.RequirePermission("attendance", rbac.ActionUpdate), handlers.Attendance.UpdateAttendance)
		attendance.DELETE("/:id", perm.RequirePermission("attendance", rbac.ActionDelete), handlers.Attendance.DeleteAttendance)
	}

	payroll := router.Group("/payroll")
	{
		payroll.POST("", perm.RequirePermission("payroll", rbac.ActionCreate), handlers.Payroll.CreatePayroll)
		payroll.GET("", perm.RequirePermission("payroll", rbac.ActionRead), handlers.Payroll.ListPayroll)
		payroll.GET("/:id", perm.RequirePermission("payroll", rbac.ActionRead), handlers.Payroll.GetPayroll)
		payroll.PUT("/:id", perm.RequirePermission("payroll", rbac.ActionUpdate), handlers.Payroll.UpdatePayroll)
		payroll.DELETE("/:id", perm.RequirePermission("payroll", rbac.ActionDelete), handlers.Payroll.DeletePayroll)
		payroll.POST("/:id/process", perm.RequirePermission("payroll", rbac.ActionUpdate), handlers.Payroll.ProcessPayroll)
		payroll.POST("/:id/pay", perm.RequirePermission("payroll", rbac.ActionUpdate), handlers.Payroll.MarkPaid)
	}

	leave := router.Group("/leave")
	{
		leave.POST("", perm.RequirePermission("leave", rbac.ActionCreate), handlers.Leave.CreateLeave)
		leave.GET("", perm.RequirePermission("leave", rbac.ActionRead), handlers.Leave.ListLeave)
		leave.GET("/:id", perm.RequirePermission("leave", rbac.ActionRead), handlers.Leave.GetLeave)
		leave.PUT("/:id", perm.RequirePermission("leave", rbac.ActionUpdate), handlers.Leave.UpdateLeave)
		leave.DELETE("/:id", perm.RequirePermission("leave", rbac.ActionDelete), handlers.Leave.DeleteLeave)
		leave.POST("/:id/approve", perm.RequirePermission("leave", rbac.ActionUpdate), handlers.Leave.ApproveLeave)
		leave.POST("/:id/reject", perm.RequirePermission("leave", rbac.ActionUpdate), handlers.Leave.RejectLeave)
		leave.POST("/:id/cancel", perm.RequirePermission("leave", rbac.ActionUpdate), handlers.Leave.CancelLeave)
	}

	users := router.Group("/users")
	{
		users.POST("", perm.RequirePermission("users", rbac.ActionCreate), handlers.User.CreateUser)
		users.GET("", perm.RequirePermission("users", rbac.ActionRead), handlers.User.ListUsers)
		users.GET("/:id", perm.RequirePermission("users", rbac.ActionRead), handlers.User.GetUser)
		users.PUT("/:id", perm.RequirePermission("users", rbac.ActionUpdate), handlers.User.UpdateUser)
		users.DELETE("/:id", perm.RequirePermission("users", rbac.ActionDelete), handlers.User.DeleteUser)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", perm.RequirePermission("notifications", rbac.ActionRead), handlers.Notification.ListNotifications)
		notifications.POST("", perm.RequirePermission("notifications", rbac.ActionCreate), handlers.Notification.CreateNotification)
		notifications.GET("/unread-count", perm.RequirePermission("notifications", rbac.ActionRead), handlers.Notification.UnreadCount)
		notifications.POST("/read-all", perm.RequirePermission("notifications", rbac.ActionUpdate), handlers.Notification.MarkAllRead)
		notifications.POST("/:id/read", perm.RequirePermission("notifications", rbac.ActionUpdate), handlers.Notification.MarkRead)
		notifications.DELETE("/:id", perm.RequirePermission("notifications", rbac.ActionDelete), handlers.Notification.DeleteNotification)
	}

	settings := router.Group("/settings")
	{
		settings.GET("", perm.RequirePermission("settings", rbac.ActionRead), handlers.Settings.ListSettings)
		settings.PUT("", perm.RequirePermission("settings", rbac.ActionUpdate), handlers.Settings.UpsertSetting)
		settings.GET("/company", perm.RequirePermission("settings", rbac.ActionRead), handlers.Settings.GetCompanyInfo)
		settings.PUT("/company", perm.RequirePermission("settings", rbac.ActionUpdate), handlers.Settings.UpdateCompanyInfo)
		settings.GET("/bank", perm.RequirePermission("settings", rbac.ActionRead), handlers.Settings.GetBankDetails)
		settings.PUT("/bank", perm.RequirePermission("settings", rbac.ActionUpdate), handlers.Settings.UpdateBankDetails)
		settings.GET("/roles", perm.RequirePermission("users", rbac.ActionRead), handlers.Settings.ListRoles)
		settings.GET("/numbering", perm.RequirePermission("numbering", rbac.ActionRead), handlers.Settings.ListNumberFormats)
		settings.PUT("/numbering", perm.RequirePermission("numbering", rbac.ActionCreate), handlers.Settings.UpsertNumberFormat)
		settings.POST("/numbering/reset", perm.RequirePermission("numbering", rbac.ActionCreate), handlers.Settings.ResetCounter)
		settings.GET("/numbering/:type/preview", perm.RequirePermission("numbering", rbac.ActionRead), handlers.Settings.PreviewNumber)
		settings.GET("/:key", perm.RequirePermission("settings", rbac.ActionRead), handlers.Settings.GetSetting)
		settings.DELETE("/:key", perm.RequirePermission("settings", rbac.ActionDelete), handlers.Settings.DeleteSetting)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", perm.RequirePermission("dashboard", rbac.ActionRead), handlers.Dashboard.GetStats)
	}

	router.GET("/activity", perm.RequirePermission("dashboard", rbac.ActionRead), handlers.Dashboard.ListActivity)
}
