package order

import "github.com/yacinedev/mystore-backend/internal/document"

type ItemRequest struct {
	ProductID int      `json:"productId"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
}

type CreateRequest struct {
	CustomerName   string        `json:"customerName" validate:"required"`
	Phone          string        `json:"phone" validate:"required"`
	Address        string        `json:"address"`
	Note           string        `json:"note"`
	DeliveryMethod string        `json:"deliveryMethod" validate:"omitempty,oneof=delivery pickup"`
	Items          []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateResponse struct {
	Success bool            `json:"success"`
	OrderID string          `json:"orderId"`
	Order   *document.Order `json:"order"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
