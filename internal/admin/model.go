package admin

type ResetResponse struct {
	Success         bool `json:"success"`
	ProductsRemoved int  `json:"productsRemoved"`
	OrdersRemoved   int  `json:"ordersRemoved"`
}
