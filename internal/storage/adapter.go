package storage

import (
	"context"
	"errors"
)

// Slot keys, one per persisted collection. The products key carries a
// version suffix: bumping it abandons data under the old key instead of
// migrating it, which is how a catalog shape change gets rolled out.
const (
	KeyProducts = "africtales_products_v5"
	KeyCart     = "africtales_cart"
	KeyUser     = "africtales_user"
	KeyOrders   = "africtales_orders"
)

var ErrNotFound = errors.New("slot not found")

// Adapter persists JSON-serialized collection slots by key. Implementations
// must distinguish an absent slot (ErrNotFound) from an empty value.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
