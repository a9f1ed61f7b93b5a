// internal/infrastructure/database/memory/product_store.go
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
)

// ProductStore implements product.Store with in-memory storage
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]product.Product
}

// NewProductStore creates a new in-memory catalog
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[string]product.Product),
	}
}

// Get returns a copy of the product with id
func (s *ProductStore) Get(_ context.Context, id string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, apperror.NotFound("product", id)
	}
	return &p, nil
}

// List returns every product, oldest first
func (s *ProductStore) List(_ context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Create stores a new product
func (s *ProductStore) Create(_ context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.products[p.ID] = *p
	return nil
}

// Update replaces a stored product
func (s *ProductStore) Update(_ context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		return apperror.NotFound("product", p.ID)
	}
	p.UpdatedAt = time.Now().UTC()
	s.products[p.ID] = *p
	return nil
}

// Delete removes a product
func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return apperror.NotFound("product", id)
	}
	delete(s.products, id)
	return nil
}

// DecrementStock removes quantity units if at least that many remain
func (s *ProductStore) DecrementStock(_ context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[id]
	if !exists {
		return apperror.NotFound("product", id)
	}
	if p.Stock < quantity {
		return product.ErrInsufficientStock
	}
	p.Stock -= quantity
	s.products[id] = p
	return nil
}

// IncrementStock returns quantity units to stock
func (s *ProductStore) IncrementStock(_ context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[id]
	if !exists {
		return apperror.NotFound("product", id)
	}
	p.Stock += quantity
	s.products[id] = p
	return nil
}

// DeleteAll empties the catalog
func (s *ProductStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[string]product.Product)
	return nil
}
