package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

type productResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Active   bool     `json:"active"`
	Images   []string `json:"images"`
}

type orderResponse struct {
	ID     string  `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

func (s *APITestSuite) createProduct(token, name string, price float64) *productResponse {
	resp := s.doRequest(http.MethodPost, "/products", token, map[string]any{
		"name":     name,
		"price":    price,
		"quantity": 10,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	created, err := decodeResponseBody[productResponse](resp)
	s.Require().NoError(err)

	return created
}

func (s *APITestSuite) TestProductLifecycle() {
	token := s.login()

	// Creating products requires authentication.
	resp := s.doRequest(http.MethodPost, "/products", "", map[string]any{
		"name": "lamp", "price": 49.9, "quantity": 10,
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)

	first := s.createProduct(token, "lamp", 49.9)
	second := s.createProduct(token, "rug", 120)

	s.Assert().Equal(1, first.ID)
	s.Assert().Equal(2, second.ID)
	s.Assert().True(first.Active)

	// The public catalog shows both.
	resp = s.doRequest(http.MethodGet, "/products", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list, err := decodeResponseBody[[]productResponse](resp)
	s.Require().NoError(err)
	s.Require().Len(*list, 2)

	// Partial update touches only the supplied fields.
	resp = s.doRequest(http.MethodPut, "/products/1", token, map[string]any{"price": 59.9})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated, err := decodeResponseBody[productResponse](resp)
	s.Require().NoError(err)
	s.Assert().Equal("lamp", updated.Name)
	s.Assert().Equal(59.9, updated.Price)

	// Delete, then the sequence must not reuse the id.
	resp = s.doRequest(http.MethodDelete, "/products/1", token, nil)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	third := s.createProduct(token, "vase", 15)
	s.Assert().Equal(3, third.ID)

	resp = s.doRequest(http.MethodGet, "/products/1", "", nil)
	resp.Body.Close()
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APITestSuite) TestOrderFlowAndAnalytics() {
	token := s.login()

	product := s.createProduct(token, "lamp", 49.9)

	// Customers place orders without authentication.
	resp := s.doRequest(http.MethodPost, "/orders", "", map[string]any{
		"customerName": "Amine",
		"phone":        "+213555000111",
		"items": []map[string]any{
			{"productId": product.ID, "name": product.Name, "price": product.Price, "quantity": 2},
		},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	created, err := decodeResponseBody[struct {
		Success bool           `json:"success"`
		OrderID string         `json:"orderId"`
		Order   *orderResponse `json:"order"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().True(created.Success)
	s.Assert().True(strings.HasPrefix(created.OrderID, "ORD-"))
	s.Require().NotNil(created.Order)
	s.Assert().Equal(99.8, created.Order.Total)
	s.Assert().Equal("pending", created.Order.Status)

	// A pending order is not counted yet.
	stats := s.dashboardStats(token)
	s.Assert().Equal(0, stats.OrdersCount)
	s.Assert().Equal(0.0, stats.Revenue)
	s.Assert().Equal(1, stats.OrdersTotal)
	s.Assert().Equal(1, stats.OrdersPending)

	// Completing it moves the counters.
	resp = s.doRequest(http.MethodPut, "/orders/"+created.OrderID+"/status", token, map[string]string{
		"status": "completed",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	stats = s.dashboardStats(token)
	s.Assert().Equal(1, stats.OrdersCount)
	s.Assert().Equal(99.8, stats.Revenue)
	s.Assert().Equal(0, stats.OrdersPending)
	s.Require().Len(stats.Monthly, 1)

	// Cancelling takes them back out.
	resp = s.doRequest(http.MethodPut, "/orders/"+created.OrderID+"/status", token, map[string]string{
		"status": "cancelled",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	stats = s.dashboardStats(token)
	s.Assert().Equal(0, stats.OrdersCount)
	s.Assert().Equal(0.0, stats.Revenue)
}

func (s *APITestSuite) TestConcurrentOrderCreation() {
	token := s.login()

	payload, err := json.Marshal(map[string]any{
		"customerName": "Amine",
		"phone":        "+213555000111",
		"items": []map[string]any{
			{"productId": 1, "name": "lamp", "price": 49.9, "quantity": 1},
		},
	})
	s.Require().NoError(err)

	const orders = 2

	var wg sync.WaitGroup
	statuses := make(chan int, orders)

	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Post(s.baseUrl+"/orders", "application/json", bytes.NewReader(payload))
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}

	wg.Wait()
	close(statuses)

	for code := range statuses {
		s.Require().Equal(http.StatusOK, code)
	}

	resp := s.doRequest(http.MethodGet, "/orders", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list, err := decodeResponseBody[[]orderResponse](resp)
	s.Require().NoError(err)
	s.Assert().Len(*list, orders, "simultaneous orders must not overwrite each other")
}

type dashboardStatsResponse struct {
	Visitors      int     `json:"visitors"`
	OrdersCount   int     `json:"ordersCount"`
	Revenue       float64 `json:"revenue"`
	ProductsTotal int     `json:"productsTotal"`
	OrdersTotal   int     `json:"ordersTotal"`
	OrdersPending int     `json:"ordersPending"`
	Monthly       []struct {
		Month string `json:"month"`
	} `json:"monthly"`
}

func (s *APITestSuite) dashboardStats(token string) *dashboardStatsResponse {
	resp := s.doRequest(http.MethodGet, "/dashboard/stats", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	stats, err := decodeResponseBody[dashboardStatsResponse](resp)
	s.Require().NoError(err)

	return stats
}

func (s *APITestSuite) TestVisitorCounter() {
	token := s.login()

	for i := 0; i < 3; i++ {
		resp := s.doRequest(http.MethodPost, "/analytics/visitor", "", nil)
		resp.Body.Close()
		s.Require().Equal(http.StatusOK, resp.StatusCode)
	}

	stats := s.dashboardStats(token)
	s.Assert().Equal(3, stats.Visitors)
}

func (s *APITestSuite) TestSettingsUpdate() {
	// The storefront reads settings without authentication.
	resp := s.doRequest(http.MethodGet, "/settings", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	settings, err := decodeResponseBody[struct {
		StoreName string `json:"storeName"`
		Currency  string `json:"currency"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().Equal("My Store", settings.StoreName)

	// Updating requires a token.
	resp = s.doRequest(http.MethodPut, "/settings", "", map[string]string{"storeName": "Lamp Shop"})
	resp.Body.Close()
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)

	token := s.login()

	resp = s.doRequest(http.MethodPut, "/settings", token, map[string]string{"storeName": "Lamp Shop"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated, err := decodeResponseBody[struct {
		StoreName string `json:"storeName"`
		Currency  string `json:"currency"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().Equal("Lamp Shop", updated.StoreName)
	s.Assert().Equal("DA", updated.Currency, "untouched fields keep their values")
}

func (s *APITestSuite) TestResetData() {
	token := s.login()

	s.createProduct(token, "lamp", 49.9)

	resp := s.doRequest(http.MethodPost, "/reset-data", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	result, err := decodeResponseBody[struct {
		Success         bool `json:"success"`
		ProductsRemoved int  `json:"productsRemoved"`
		OrdersRemoved   int  `json:"ordersRemoved"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().True(result.Success)
	s.Assert().Equal(1, result.ProductsRemoved)

	// The login password survives the reset.
	s.login()

	resp = s.doRequest(http.MethodGet, "/products", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list, err := decodeResponseBody[[]productResponse](resp)
	s.Require().NoError(err)
	s.Assert().Empty(*list)
}
