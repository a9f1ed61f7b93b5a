// internal/infrastructure/database/mongo/product_store.go
package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductStore implements product.Store on MongoDB
type ProductStore struct {
	collection *mongo.Collection
}

// NewProductStore creates a new product store
func NewProductStore(db *Database) *ProductStore {
	return &ProductStore{collection: db.DB().Collection(ProductsCollection)}
}

// Get retrieves a single product by ID
func (s *ProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, translate("get product", "product", id, err)
	}
	return &p, nil
}

// List returns every product, oldest first
func (s *ProductStore) List(ctx context.Context) ([]product.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Store("list products", err)
	}

	products := []product.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperror.Store("list products", err)
	}
	return products, nil
}

// Create inserts a product
func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, p); err != nil {
		return apperror.Store("create product", err)
	}
	return nil
}

// Update saves every field of an existing product
func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	p.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
		"stock":       p.Stock,
		"rating":      p.Rating,
		"num_reviews": p.NumReviews,
		"updated_at":  p.UpdatedAt,
	}}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return apperror.Store("update product", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("product", p.ID)
	}
	return nil
}

// Delete removes a product
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Store("delete product", err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("product", id)
	}
	return nil
}

// DecrementStock removes quantity units in a single conditional update
func (s *ProductStore) DecrementStock(ctx context.Context, id string, quantity int) error {
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Store("decrement stock", err)
	}
	if result.MatchedCount == 1 {
		return nil
	}

	// Nothing matched: tell a missing product apart from a shortfall
	count, err := s.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Store("decrement stock", err)
	}
	if count == 0 {
		return apperror.NotFound("product", id)
	}
	return product.ErrInsufficientStock
}

// IncrementStock returns quantity units to stock
func (s *ProductStore) IncrementStock(ctx context.Context, id string, quantity int) error {
	update := bson.M{
		"$inc": bson.M{"stock": quantity},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperror.Store("increment stock", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("product", id)
	}
	return nil
}
