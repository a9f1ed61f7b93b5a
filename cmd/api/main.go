// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/domain/user"
	"github.com/your-org/storefront-api/internal/infrastructure/database"
	"github.com/your-org/storefront-api/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-api/internal/infrastructure/database/seed"
	"github.com/your-org/storefront-api/internal/infrastructure/messaging/kafka"
	"github.com/your-org/storefront-api/internal/interfaces/http"
	"github.com/your-org/storefront-api/internal/interfaces/http/routes"
	"github.com/your-org/storefront-api/internal/pkg/auth"
	"github.com/your-org/storefront-api/internal/pkg/email"
	"github.com/your-org/storefront-api/internal/pkg/logger"
	"github.com/your-org/storefront-api/internal/pkg/pdf"
)

func main() {
	// Prices are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)
	log.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	ctx := context.Background()

	// Connect to the configured store and run migrations
	backend, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer backend.Close(context.Background())

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := backend.Health(ctx); err != nil {
		log.Fatalf("Store health check failed: %v", err)
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg)
	passwords := auth.NewPasswordManager(cfg)

	// Seed initial data
	if cfg.Store.SeedOnStart || cfg.Store.Driver == config.StoreDriverMemory {
		seeder := seed.NewSeeder(backend.Products, backend.Users, backend, passwords, log)
		if err := seeder.SeedIfEmpty(ctx); err != nil {
			log.WithError(err).Warn("⚠️ Data seeding failed")
		}
	}

	// Order events
	var events order.EventPublisher = order.NoopPublisher{}
	if cfg.KafkaEnabled() {
		publisher := kafka.NewPublisher(cfg.Kafka.Topic, cfg.Kafka.Brokers...)
		defer publisher.Close()
		events = publisher
		log.WithField("topic", cfg.Kafka.Topic).Info("✅ Publishing order events to Kafka")
	}

	assembler := order.NewAssembler(backend.Orders, log,
		order.WithStockReservation(backend.Products, cfg.Order.ReserveStock),
		order.WithEventPublisher(events),
		order.WithNotifier(email.NewEmailService(cfg, log)),
	)

	deps := routes.Dependencies{
		Guard:     auth.NewGuard(jwtManager),
		Products:  product.NewService(backend.Products, log),
		Carts:     cart.NewService(redis.NewCartStorage(redisClient, cfg.Cart.SlotTTL), backend.Products, log),
		Users:     user.NewService(backend.Users, cfg, jwtManager, log),
		Assembler: assembler,
		Lifecycle: order.NewLifecycle(backend.Orders, events, log),
		Invoices:  pdf.NewService(cfg),
		Logger:    log,
	}

	checks := map[string]http.HealthCheck{
		backend.Driver: backend.Health,
		"redis":        redisClient.Health,
	}

	log.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, deps, redisClient.GetClient(), checks, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("✅ Server shutdown completed")
}
