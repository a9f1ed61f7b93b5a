// internal/infrastructure/database/postgres/order_store.go
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/order"
	"gorm.io/gorm"
)

// OrderStore implements order.Store on PostgreSQL
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore creates a new order store
func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db.GetDB()}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// Create inserts the order and its items in one transaction
func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	o.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	if err != nil {
		return apperror.Store("create order", err)
	}
	return nil
}

// Get retrieves an order with its items
func (s *OrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems", preloadItems).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, translate("get order", "order", id, err)
	}
	return &o, nil
}

// ListByOwner returns the orders placed by userID, newest first
func (s *OrderStore) ListByOwner(ctx context.Context, userID string) ([]order.Order, error) {
	var orders []order.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems", preloadItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperror.Store("list orders", err)
	}
	return orders, nil
}

// ListAll returns every order, newest first
func (s *OrderStore) ListAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems", preloadItems).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperror.Store("list orders", err)
	}
	return orders, nil
}

// SetDelivered updates only the delivery columns
func (s *OrderStore) SetDelivered(ctx context.Context, id string, at time.Time) (*order.Order, error) {
	return s.setColumns(ctx, id, map[string]interface{}{
		"is_delivered": true,
		"delivered_at": at,
		"updated_at":   at,
	})
}

// SetPaid updates only the payment columns
func (s *OrderStore) SetPaid(ctx context.Context, id string, at time.Time, result order.PaymentResult) (*order.Order, error) {
	return s.setColumns(ctx, id, map[string]interface{}{
		"is_paid":                      true,
		"paid_at":                      at,
		"payment_result_id":            result.ID,
		"payment_result_status":        result.Status,
		"payment_result_update_time":   result.UpdateTime,
		"payment_result_email_address": result.EmailAddress,
		"updated_at":                   at,
	})
}

func (s *OrderStore) setColumns(ctx context.Context, id string, columns map[string]interface{}) (*order.Order, error) {
	result := s.db.WithContext(ctx).Model(&order.Order{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, apperror.Store("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NotFound("order", id)
	}
	return s.Get(ctx, id)
}
