// internal/infrastructure/database/mongo/connection.go
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	UsersCollection    = "users"
)

// Database wraps the MongoDB client and database handle
type Database struct {
	client *mongo.Client
	db     *mongo.Database
	logger logrus.FieldLogger
}

// NewConnection connects to MongoDB and verifies the connection
func NewConnection(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	return Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
}

// Connect opens a client for uri and selects database
func Connect(ctx context.Context, uri, database string, logger logrus.FieldLogger) (*Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetRegistry(NewRegistry()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.WithField("database", database).Info("✅ MongoDB connection established successfully")

	return &Database{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// DB returns the database handle
func (d *Database) DB() *mongo.Database {
	return d.db
}

// Health pings the primary
func (d *Database) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return d.client.Ping(ctx, nil)
}

// Close disconnects the client
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// CreateIndexes creates the indexes the stores rely on
func (d *Database) CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		ProductsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := d.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	d.logger.Info("✅ MongoDB indexes created")
	return nil
}

// Purge removes all orders, products and users
func (d *Database) Purge(ctx context.Context) error {
	for _, collection := range []string{OrdersCollection, ProductsCollection, UsersCollection} {
		if _, err := d.db.Collection(collection).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to purge %s: %w", collection, err)
		}
	}
	return nil
}
