package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Step maps the fulfillment progression onto tracker steps 1 through 4.
// Unknown values report step 1, same as pending.
func (s OrderStatus) Step() int {
	switch s {
	case StatusProcessing:
		return 2
	case StatusShipped:
		return 3
	case StatusDelivered:
		return 4
	default:
		return 1
	}
}

type PaymentMethod string

const (
	PaymentMpesa  PaymentMethod = "mpesa"
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
)

type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Items         []CartItem    `json:"items"`
	Total         int64         `json:"total"`
	Status        OrderStatus   `json:"status"`
	Date          string        `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Feedback      *Feedback     `json:"feedback,omitempty"`
	CustomerName  string        `json:"customerName,omitempty"`
}

// NewOrderID derives a display-friendly order id from the current time,
// keeping the last six digits of the millisecond timestamp.
func NewOrderID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "ORD-" + ms
}

// OrderDate formats a placement date the way orders store it.
func OrderDate(now time.Time) string {
	return now.Format("2006-01-02")
}
