// internal/infrastructure/database/memory/stores.go
package memory

import "context"

// Stores bundles the in-memory stores so they can be purged together
type Stores struct {
	Products *ProductStore
	Orders   *OrderStore
	Users    *UserStore
}

// NewStores creates empty in-memory stores
func NewStores() *Stores {
	return &Stores{
		Products: NewProductStore(),
		Orders:   NewOrderStore(),
		Users:    NewUserStore(),
	}
}

// Purge removes all orders, products and users
func (s *Stores) Purge(ctx context.Context) error {
	if err := s.Orders.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.Products.DeleteAll(ctx); err != nil {
		return err
	}
	return s.Users.DeleteAll(ctx)
}

// Health always succeeds
func (s *Stores) Health(context.Context) error {
	return nil
}
