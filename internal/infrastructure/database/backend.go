// internal/infrastructure/database/backend.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/domain/user"
	"github.com/your-org/storefront-api/internal/infrastructure/database/memory"
	"github.com/your-org/storefront-api/internal/infrastructure/database/mongo"
	"github.com/your-org/storefront-api/internal/infrastructure/database/postgres"
)

// Backend is the set of stores selected by STORE_DRIVER
type Backend struct {
	Driver   string
	Products product.Store
	Orders   order.Store
	Users    user.Store

	purge  func(ctx context.Context) error
	health func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Open connects to the configured store and prepares its schema
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return openPostgres(cfg, logger)
	case config.StoreDriverMongo:
		return openMongo(ctx, cfg, logger)
	case config.StoreDriverMemory:
		logger.Warn("⚠️ Using in-memory store, data is lost on restart")
		return NewMemoryBackend(memory.NewStores()), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %q", cfg.Store.Driver)
	}
}

func openPostgres(cfg *config.Config, logger logrus.FieldLogger) (*Backend, error) {
	db, err := postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, err
	}

	migration := postgres.NewMigration(db, logger)
	if err := migration.RunAutoMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		logger.WithError(err).Warn("⚠️ Index creation failed")
	}
	if cfg.IsDevelopment() {
		_ = migration.GetTableInfo()
	}

	return &Backend{
		Driver:   config.StoreDriverPostgres,
		Products: postgres.NewProductStore(db),
		Orders:   postgres.NewOrderStore(db),
		Users:    postgres.NewUserStore(db),
		purge:    migration.Purge,
		health:   db.Health,
		close:    func(context.Context) error { return db.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Backend, error) {
	db, err := mongo.NewConnection(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.CreateIndexes(ctx); err != nil {
		logger.WithError(err).Warn("⚠️ Index creation failed")
	}

	return &Backend{
		Driver:   config.StoreDriverMongo,
		Products: mongo.NewProductStore(db),
		Orders:   mongo.NewOrderStore(db),
		Users:    mongo.NewUserStore(db),
		purge:    db.Purge,
		health:   db.Health,
		close:    db.Close,
	}, nil
}

// NewMemoryBackend wraps in-process stores
func NewMemoryBackend(stores *memory.Stores) *Backend {
	return &Backend{
		Driver:   config.StoreDriverMemory,
		Products: stores.Products,
		Orders:   stores.Orders,
		Users:    stores.Users,
		purge:    stores.Purge,
		health:   stores.Health,
		close:    func(context.Context) error { return nil },
	}
}

// Purge removes all orders, products and users
func (b *Backend) Purge(ctx context.Context) error {
	return b.purge(ctx)
}

// Health pings the underlying store
func (b *Backend) Health(ctx context.Context) error {
	return b.health(ctx)
}

// Close releases the store connection
func (b *Backend) Close(ctx context.Context) error {
	return b.close(ctx)
}
