// internal/domain/product/service.go
package product

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/apperror"
)

// Service handles product business logic
type Service struct {
	store  Store
	logger logrus.FieldLogger
}

// NewService creates a new product service
func NewService(store Store, logger logrus.FieldLogger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
}

// UpdateRequest represents product update data. Nil fields keep their current value.
type UpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
}

// ListProducts returns the whole catalog
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.store.List(ctx)
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validation("product id is required")
	}
	return s.store.Get(ctx, id)
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(ctx context.Context, req *CreateRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if req.Price.IsNegative() {
		return nil, apperror.Validation("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, apperror.Validation("stock must not be negative")
	}

	product := &Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      decimal.Zero,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created")

	return product, nil
}

// UpdateProduct applies a partial update to an existing product
func (s *Service) UpdateProduct(ctx context.Context, id string, req *UpdateRequest) (*Product, error) {
	product, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			product.Name = name
		}
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperror.Validation("price must not be negative")
		}
		product.Price = req.Price.Round(2)
	}
	if req.Image != nil && *req.Image != "" {
		product.Image = *req.Image
	}
	if req.Category != nil && *req.Category != "" {
		product.Category = *req.Category
	}
	// Stock may legitimately be set to zero
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperror.Validation("stock must not be negative")
		}
		product.Stock = *req.Stock
	}

	if err := s.store.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.WithField("product_id", product.ID).Info("Product updated")
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("Product deleted")
	return nil
}
