// internal/infrastructure/database/memory/cart_storage.go
package memory

import (
	"context"
	"sync"

	"github.com/your-org/storefront-api/internal/domain/cart"
)

// CartStorage implements cart.Storage with in-memory slots
type CartStorage struct {
	mu    sync.RWMutex
	slots map[string][]cart.LineItem
}

// NewCartStorage creates empty cart slots
func NewCartStorage() *CartStorage {
	return &CartStorage{
		slots: make(map[string][]cart.LineItem),
	}
}

// Load returns the items stored for sessionID
func (s *CartStorage) Load(_ context.Context, sessionID string) ([]cart.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]cart.LineItem, len(s.slots[sessionID]))
	copy(items, s.slots[sessionID])
	return items, nil
}

// Save replaces the items stored for sessionID
func (s *CartStorage) Save(_ context.Context, sessionID string, items []cart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]cart.LineItem, len(items))
	copy(stored, items)
	s.slots[sessionID] = stored
	return nil
}

// Clear erases the slot for sessionID
func (s *CartStorage) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, sessionID)
	return nil
}
