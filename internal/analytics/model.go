package analytics

import "github.com/yacinedev/mystore-backend/internal/document"

// DashboardStats aggregates the counters shown on the admin dashboard home.
type DashboardStats struct {
	Visitors      int                    `json:"visitors"`
	OrdersCount   int                    `json:"ordersCount"`
	Revenue       float64                `json:"revenue"`
	ProductsTotal int                    `json:"productsTotal"`
	OrdersTotal   int                    `json:"ordersTotal"`
	OrdersPending int                    `json:"ordersPending"`
	Monthly       []document.MonthlyStat `json:"monthly"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
