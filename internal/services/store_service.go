package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"storefront-service/internal/domain"
	rabbit "storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/storage"
)

var ErrProductNotFound = errors.New("product not found")

// StoreService is the single source of truth for catalog, cart, session
// identity and orders. Every mutation updates the in-memory state and
// writes the affected collection through to the storage adapter before
// returning; adapter failures are logged and never surfaced.
type StoreService struct {
	mu        sync.RWMutex
	storage   storage.Adapter
	publisher rabbit.PublisherInterface

	products []domain.Product
	cart     []domain.CartItem
	user     *domain.User
	orders   []domain.Order
}

func NewStoreService(adapter storage.Adapter) *StoreService {
	return &StoreService{storage: adapter}
}

// SetPublisher attaches an optional order-event publisher.
func (s *StoreService) SetPublisher(pub rabbit.PublisherInterface) {
	s.publisher = pub
}

// Initialize loads the four collection slots. A missing or unreadable
// products slot falls back to the compiled-in default catalog; the other
// slots fall back to empty. Must run once, before any other operation.
func (s *StoreService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loadSlot(ctx, storage.KeyProducts, &s.products) {
		s.products = domain.DefaultCatalog()
	}
	if !s.loadSlot(ctx, storage.KeyCart, &s.cart) {
		s.cart = nil
	}
	var u domain.User
	if s.loadSlot(ctx, storage.KeyUser, &u) {
		s.user = &u
	} else {
		s.user = nil
	}
	if !s.loadSlot(ctx, storage.KeyOrders, &s.orders) {
		s.orders = nil
	}
}

// loadSlot reads and decodes one slot into dest. Reports false when the
// slot is absent, unreadable or malformed; those cases only differ in
// whether they are worth logging.
func (s *StoreService) loadSlot(ctx context.Context, key string, dest any) bool {
	b, err := s.storage.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("storage: read %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		log.Printf("storage: decode %s: %v", key, err)
		return false
	}
	return true
}

// persist writes one collection through to its slot. Callers hold the lock.
func (s *StoreService) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: encode %s: %v", key, err)
		return
	}
	if err := s.storage.Set(ctx, key, b); err != nil {
		log.Printf("storage: write %s: %v", key, err)
	}
}

// AddToCart adds one unit of the named product. A product already in the
// cart gets its quantity bumped in place; a new product appends at the end.
// Stock is not checked or decremented.
func (s *StoreService) AddToCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			s.persist(ctx, storage.KeyCart, s.cart)
			return nil
		}
	}

	s.cart = append(s.cart, domain.CartItem{Product: *product, Quantity: 1})
	s.persist(ctx, storage.KeyCart, s.cart)
	return nil
}

// RemoveFromCart drops the entry for productID. Absent ids are a no-op.
func (s *StoreService) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(ctx, productID)
}

func (s *StoreService) removeFromCartLocked(ctx context.Context, productID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persist(ctx, storage.KeyCart, s.cart)
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less
// removes the entry, same as RemoveFromCart. Absent ids are a no-op.
func (s *StoreService) UpdateQuantity(ctx context.Context, productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(ctx, productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx, storage.KeyCart, s.cart)
}

func (s *StoreService) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	s.persist(ctx, storage.KeyCart, s.cart)
}

// Cart returns a copy of the cart in insertion order.
func (s *StoreService) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal is recomputed from the live cart on every read.
func (s *StoreService) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.cart {
		total += item.Price * item.Quantity
	}
	return total
}

// CartItemCount is the sum of quantities across cart entries.
func (s *StoreService) CartItemCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

const idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return string(b)
}

// Login installs the active user, replacing any existing one. There is no
// credential verification: the id is "admin-1" whenever the email contains
// "admin", otherwise a random-suffixed customer id, and the role is taken
// as supplied by the caller.
func (s *StoreService) Login(ctx context.Context, email string, role domain.UserRole) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "user-" + randomSuffix(5)
	if strings.Contains(email, "admin") {
		id = "admin-1"
	}
	name, _, _ := strings.Cut(email, "@")

	u := domain.User{ID: id, Name: name, Email: email, Role: role}
	s.user = &u
	s.persist(ctx, storage.KeyUser, u)
	return u
}

// Logout clears the active user and removes the persisted slot entirely,
// so a restart sees an absent user rather than an empty one.
func (s *StoreService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.storage.Remove(ctx, storage.KeyUser); err != nil {
		log.Printf("storage: remove %s: %v", storage.KeyUser, err)
	}
}

// CurrentUser returns the active user, or nil when logged out.
func (s *StoreService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// PlaceOrder prepends the caller-formed order and clears the cart in one
// critical section: no reader observes the new order with the old cart or
// the other way around. The order's internal consistency is the caller's
// responsibility.
func (s *StoreService) PlaceOrder(ctx context.Context, order domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.cart = nil
	s.persist(ctx, storage.KeyOrders, s.orders)
	s.persist(ctx, storage.KeyCart, s.cart)
	s.mu.Unlock()

	if s.publisher != nil {
		go s.publishOrderPlacedEvent(context.Background(), order)
	}
}

func (s *StoreService) publishOrderPlacedEvent(ctx context.Context, order domain.Order) {
	var count int64
	for _, item := range order.Items {
		count += item.Quantity
	}
	evt := domain.OrderPlacedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Date:          order.Date,
		ItemCount:     count,
	}
	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		log.Printf("failed to publish order.placed for %s: %v", order.ID, err)
	}
}

// AddProduct prepends a caller-formed product to the catalog. Ids are not
// checked for uniqueness.
func (s *StoreService) AddProduct(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]domain.Product{product}, s.products...)
	s.persist(ctx, storage.KeyProducts, s.products)
}

// Products returns the catalog filtered by category and sorted by the
// given key: "price-asc", "price-desc", or catalog order for anything else.
// An empty or "All" category matches everything.
func (s *StoreService) Products(category, sortBy string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || category == domain.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	switch sortBy {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func (s *StoreService) ProductByID(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Orders returns all orders, newest first.
func (s *StoreService) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersForUser returns the user's orders sorted by placement date, newest
// first.
func (s *StoreService) OrdersForUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// UpdateOrderStatus sets the order's status. Absent ids are a no-op and
// transitions are not checked for legality.
func (s *StoreService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.persist(ctx, storage.KeyOrders, s.orders)
			return
		}
	}
}

// AddOrderFeedback attaches feedback to the order, overwriting any prior
// feedback. Absent ids are a no-op.
func (s *StoreService) AddOrderFeedback(ctx context.Context, orderID string, feedback domain.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Feedback = &feedback
			s.persist(ctx, storage.KeyOrders, s.orders)
			return
		}
	}
}

// Revenue sums order totals across the whole order collection.
func (s *StoreService) Revenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, o := range s.orders {
		total += o.Total
	}
	return total
}
