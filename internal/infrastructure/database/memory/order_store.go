// internal/infrastructure/database/memory/order_store.go
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/order"
)

// OrderStore implements order.Store with in-memory storage
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]order.Order
}

// NewOrderStore creates a new in-memory order store
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]order.Order),
	}
}

// Create assigns an id and stores the order
func (s *OrderStore) Create(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = uuid.NewString()
	s.orders[o.ID] = copyOrder(*o)
	return nil
}

// Get returns a copy of the order with id
func (s *OrderStore) Get(_ context.Context, id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.orders[id]
	if !exists {
		return nil, apperror.NotFound("order", id)
	}
	o = copyOrder(o)
	return &o, nil
}

// ListByOwner returns the orders placed by userID, newest first
func (s *OrderStore) ListByOwner(_ context.Context, userID string) ([]order.Order, error) {
	return s.list(func(o order.Order) bool { return o.UserID == userID }), nil
}

// ListAll returns every order, newest first
func (s *OrderStore) ListAll(_ context.Context) ([]order.Order, error) {
	return s.list(func(order.Order) bool { return true }), nil
}

// SetDelivered marks the order delivered at at
func (s *OrderStore) SetDelivered(_ context.Context, id string, at time.Time) (*order.Order, error) {
	return s.modify(id, func(o *order.Order) {
		o.IsDelivered = true
		o.DeliveredAt = &at
		o.UpdatedAt = at
	})
}

// SetPaid marks the order paid at at and records result
func (s *OrderStore) SetPaid(_ context.Context, id string, at time.Time, result order.PaymentResult) (*order.Order, error) {
	return s.modify(id, func(o *order.Order) {
		o.IsPaid = true
		o.PaidAt = &at
		o.PaymentResult = result
		o.UpdatedAt = at
	})
}

func (s *OrderStore) modify(id string, apply func(*order.Order)) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.orders[id]
	if !exists {
		return nil, apperror.NotFound("order", id)
	}
	apply(&stored)
	s.orders[id] = stored

	result := copyOrder(stored)
	return &result, nil
}

// DeleteAll removes every order
func (s *OrderStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make(map[string]order.Order)
	return nil
}

func (s *OrderStore) list(keep func(order.Order) bool) []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]order.Order, 0)
	for _, o := range s.orders {
		if keep(o) {
			result = append(result, copyOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func copyOrder(o order.Order) order.Order {
	items := make([]order.OrderItem, len(o.OrderItems))
	copy(items, o.OrderItems)
	o.OrderItems = items
	return o
}
