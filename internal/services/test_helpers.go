package services

import (
	"context"

	"storefront-service/internal/domain"
	"storefront-service/internal/storage/memory"
)

// newSeededStore builds a store on a fresh in-memory adapter and runs
// Initialize, so tests start from the default catalog and empty slots.
func newSeededStore() (*StoreService, *memory.Store) {
	adapter := memory.New()
	s := NewStoreService(adapter)
	s.Initialize(context.Background())
	return s, adapter
}

func CreateTestOrder(id, userID string, total int64, status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:            id,
		UserID:        userID,
		Total:         total,
		Status:        status,
		Date:          "2026-01-15",
		PaymentMethod: domain.PaymentMpesa,
	}
}

const (
	TestUserID  = "user-abc12"
	TestOrderID = "ORD-123456"
)
