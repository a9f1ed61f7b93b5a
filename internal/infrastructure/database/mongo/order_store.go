// internal/infrastructure/database/mongo/order_store.go
package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderStore implements order.Store on MongoDB. Each order, items included, is one document.
type OrderStore struct {
	collection *mongo.Collection
}

// NewOrderStore creates a new order store
func NewOrderStore(db *Database) *OrderStore {
	return &OrderStore{collection: db.DB().Collection(OrdersCollection)}
}

// Create assigns an id and inserts the order
func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	o.ID = uuid.NewString()
	if _, err := s.collection.InsertOne(ctx, o); err != nil {
		return apperror.Store("create order", err)
	}
	return nil
}

// Get retrieves an order by ID
func (s *OrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, translate("get order", "order", id, err)
	}
	return &o, nil
}

// ListByOwner returns the orders placed by userID, newest first
func (s *OrderStore) ListByOwner(ctx context.Context, userID string) ([]order.Order, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

// ListAll returns every order, newest first
func (s *OrderStore) ListAll(ctx context.Context) ([]order.Order, error) {
	return s.find(ctx, bson.M{})
}

// SetDelivered sets only the delivery fields
func (s *OrderStore) SetDelivered(ctx context.Context, id string, at time.Time) (*order.Order, error) {
	return s.set(ctx, id, bson.M{
		"is_delivered": true,
		"delivered_at": at,
		"updated_at":   at,
	})
}

// SetPaid sets only the payment fields
func (s *OrderStore) SetPaid(ctx context.Context, id string, at time.Time, result order.PaymentResult) (*order.Order, error) {
	return s.set(ctx, id, bson.M{
		"is_paid":        true,
		"paid_at":        at,
		"payment_result": result,
		"updated_at":     at,
	})
}

func (s *OrderStore) set(ctx context.Context, id string, fields bson.M) (*order.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o order.Order
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&o)
	if err != nil {
		return nil, translate("update order", "order", id, err)
	}
	return &o, nil
}

func (s *OrderStore) find(ctx context.Context, filter bson.M) ([]order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Store("list orders", err)
	}

	orders := []order.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperror.Store("list orders", err)
	}
	return orders, nil
}
