// internal/domain/cart/service.go
package cart

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
)

// Service handles cart business logic for HTTP callers
type Service struct {
	storage Storage
	catalog product.Reader
	logger  logrus.FieldLogger
}

// NewService creates a new cart service
func NewService(storage Storage, catalog product.Reader, logger logrus.FieldLogger) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
		logger:  logger,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GetCart opens the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Engine, error) {
	return Open(ctx, s.storage, sessionID)
}

// AddItem snapshots the product's current name, price and image into the cart.
// The quantity is capped to the units in stock.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddToCartRequest) (*Engine, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, apperror.Validation("product_id is required")
	}
	if req.Quantity < 1 {
		return nil, apperror.Validation("quantity must be at least 1")
	}

	p, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsInStock() {
		return nil, apperror.Validation("%s is out of stock", p.Name)
	}

	engine, err := Open(ctx, s.storage, sessionID)
	if err != nil {
		return nil, err
	}

	item := LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  p.CapQuantity(req.Quantity),
	}
	if err := engine.AddOrReplace(ctx, item); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	}).Debug("Cart item added")

	return engine, nil
}

// RemoveItem removes a product from the session cart
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Engine, error) {
	engine, err := Open(ctx, s.storage, sessionID)
	if err != nil {
		return nil, err
	}
	if err := engine.Remove(ctx, productID); err != nil {
		return nil, err
	}
	return engine, nil
}

// ClearCart empties the session cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	engine, err := Open(ctx, s.storage, sessionID)
	if err != nil {
		return err
	}
	return engine.Clear(ctx)
}
