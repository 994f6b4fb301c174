package domain

import (
	"strconv"
	"time"
)

// Product categories the catalog recognizes. "All" is a filter value, not a
// category a product can carry.
const (
	CategoryAll         = "All"
	CategoryJewelry     = "Jewelry"
	CategoryAccessories = "Accessories"
	CategoryDecor       = "Decor"
	CategoryBeadwork    = "Beadwork"
)

var Categories = []string{
	CategoryAll,
	CategoryJewelry,
	CategoryAccessories,
	CategoryDecor,
	CategoryBeadwork,
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Stock       int64   `json:"stock"`
	// History is free text passed as context to the insight prompt.
	History string `json:"history,omitempty"`
}

// NewProductID assigns admin-created products a fresh time-derived id.
// Seeded products use small numeric ids, so millisecond timestamps cannot
// collide with them.
func NewProductID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// CartItem is a product line in the cart. At most one entry per product id.
type CartItem struct {
	Product
	Quantity int64 `json:"quantity"`
}
