package domain

type OrderPlacedEvent struct {
	OrderID       string        `json:"orderId"`
	UserID        string        `json:"userId"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          string        `json:"date"`
	ItemCount     int64         `json:"itemCount"`
}
