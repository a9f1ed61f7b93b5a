// internal/infrastructure/database/postgres/product_store.go
package postgres

import (
	"context"

	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
	"gorm.io/gorm"
)

// ProductStore implements product.Store on PostgreSQL
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a new product store
func NewProductStore(db *DB) *ProductStore {
	return &ProductStore{db: db.GetDB()}
}

// Get retrieves a single product by ID
func (s *ProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate("get product", "product", id, err)
	}
	return &p, nil
}

// List returns every product, oldest first
func (s *ProductStore) List(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, apperror.Store("list products", err)
	}
	return products, nil
}

// Create inserts a product
func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperror.Store("create product", err)
	}
	return nil
}

// Update saves every column of an existing product
func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	result := s.db.WithContext(ctx).Model(&product.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
		"stock":       p.Stock,
		"rating":      p.Rating,
		"num_reviews": p.NumReviews,
	})
	if result.Error != nil {
		return apperror.Store("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product", p.ID)
	}
	return nil
}

// Delete removes a product
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&product.Product{})
	if result.Error != nil {
		return apperror.Store("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product", id)
	}
	return nil
}

// DecrementStock removes quantity units in a single conditional UPDATE
func (s *ProductStore) DecrementStock(ctx context.Context, id string, quantity int) error {
	result := s.db.WithContext(ctx).Model(&product.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			return product.ErrInsufficientStock
		}
		return apperror.Store("decrement stock", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing matched: tell a missing product apart from a shortfall
	var count int64
	if err := s.db.WithContext(ctx).Model(&product.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperror.Store("decrement stock", err)
	}
	if count == 0 {
		return apperror.NotFound("product", id)
	}
	return product.ErrInsufficientStock
}

// IncrementStock returns quantity units to stock
func (s *ProductStore) IncrementStock(ctx context.Context, id string, quantity int) error {
	result := s.db.WithContext(ctx).Model(&product.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return apperror.Store("increment stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product", id)
	}
	return nil
}
