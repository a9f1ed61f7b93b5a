// cmd/seeder/main.go
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/infrastructure/database"
	"github.com/your-org/storefront-api/internal/infrastructure/database/seed"
	"github.com/your-org/storefront-api/internal/pkg/auth"
	"github.com/your-org/storefront-api/internal/pkg/logger"
)

func main() {
	destroy := flag.Bool("d", false, "destroy all orders, products and users instead of importing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg)

	ctx := context.Background()
	backend, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer backend.Close(context.Background())

	seeder := seed.NewSeeder(backend.Products, backend.Users, backend, auth.NewPasswordManager(cfg), log)

	if *destroy {
		err = seeder.Destroy(ctx)
	} else {
		err = seeder.Import(ctx)
	}
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
