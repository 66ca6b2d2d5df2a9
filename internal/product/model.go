package product

type CreateRequest struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Price             *float64 `json:"price" validate:"required,gte=0"`
	Quantity          *int     `json:"quantity" validate:"required,gte=0"`
	Category          string   `json:"category"`
	Active            *bool    `json:"active"`
	DeliveryAvailable *bool    `json:"deliveryAvailable"`
	Images            []string `json:"images"`
}

// UpdateRequest merges the present fields into an existing product. Images
// are replaced only when a non-empty list is supplied.
type UpdateRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity          *int     `json:"quantity" validate:"omitempty,gte=0"`
	Category          *string  `json:"category"`
	Active            *bool    `json:"active"`
	DeliveryAvailable *bool    `json:"deliveryAvailable"`
	Images            []string `json:"images"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
