package dto

// DashboardStats is the aggregate snapshot shown on the home page.
// All monetary totals are in cents; CollectionRate is a ratio in
// [0, 1] rendered with two decimal places.
type DashboardStats struct {
	TotalClients    int `json:"total_clients"`
	ActiveProjects  int `json:"active_projects"`
	PendingInvoices int `json:"pending_invoices"`
	TotalEmployees  int `json:"total_employees"`

	TotalRevenue      int64 `json:"total_revenue"`
	TotalExpenses     int64 `json:"total_expenses"`
	OutstandingAmount int64 `json:"outstanding_amount"`

	CollectionRate string `json:"collection_rate"`

	RecentActivity []*ActivityResponse `json:"recent_activity"`
}
