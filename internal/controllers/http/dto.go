package http

import "storefront-service/internal/domain"

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int64             `json:"itemCount"`
}

type LoginRequest struct {
	Email string          `json:"email" binding:"required,email"`
	Role  domain.UserRole `json:"role" binding:"required,oneof=admin customer"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       int64   `json:"price" binding:"required,min=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	Stock       int64   `json:"stock" binding:"min=0"`
	History     string  `json:"history"`
}

// CheckoutRequest carries the shipping form plus the payment choice. The
// required tags are the form-boundary validation; nothing past this layer
// re-checks them.
type CheckoutRequest struct {
	FirstName     string               `json:"firstName" binding:"required"`
	LastName      string               `json:"lastName" binding:"required"`
	Email         string               `json:"email" binding:"required,email"`
	Address       string               `json:"address" binding:"required"`
	City          string               `json:"city" binding:"required"`
	Phone         string               `json:"phone" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=mpesa card paypal"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,oneof=pending processing shipped delivered"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// OrderResponse is an order plus its derived shipment-progress step
// (pending=1 through delivered=4), which the tracker UI renders per order.
type OrderResponse struct {
	domain.Order
	Step int `json:"step"`
}

func toOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{Order: o, Step: o.Status.Step()}
}

func toOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

type InsightResponse struct {
	Insight string `json:"insight"`
}

type StatsResponse struct {
	Revenue      int64 `json:"revenue"`
	OrderCount   int   `json:"orderCount"`
	ProductCount int   `json:"productCount"`
}
