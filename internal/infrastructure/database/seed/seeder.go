// internal/infrastructure/database/seed/seeder.go
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/domain/user"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// Purger removes all orders, products and users from a store
type Purger interface {
	Purge(ctx context.Context) error
}

// Seeder loads or removes the sample data set
type Seeder struct {
	products  product.Store
	users     user.Store
	purger    Purger
	passwords *auth.PasswordManager
	logger    logrus.FieldLogger
}

// NewSeeder creates a new seeder
func NewSeeder(products product.Store, users user.Store, purger Purger, passwords *auth.PasswordManager, logger logrus.FieldLogger) *Seeder {
	return &Seeder{
		products:  products,
		users:     users,
		purger:    purger,
		passwords: passwords,
		logger:    logger,
	}
}

// Import wipes the store and inserts the sample users and products
func (s *Seeder) Import(ctx context.Context) error {
	if err := s.purger.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge data: %w", err)
	}
	if err := s.insert(ctx); err != nil {
		return err
	}

	s.logger.Info("🌱 Data imported")
	for _, u := range SampleUsers() {
		s.logger.WithFields(logrus.Fields{"email": u.Email, "admin": u.IsAdmin}).Info("Sample user available")
	}
	return nil
}

// SeedIfEmpty inserts the sample data only when the catalog has no products
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	existing, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if len(existing) > 0 {
		s.logger.WithField("products", len(existing)).Info("⏭️ Catalog already seeded")
		return nil
	}
	return s.insert(ctx)
}

// Destroy removes all orders, products and users
func (s *Seeder) Destroy(ctx context.Context) error {
	if err := s.purger.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge data: %w", err)
	}
	s.logger.Info("🗑️ Data destroyed")
	return nil
}

func (s *Seeder) insert(ctx context.Context) error {
	now := time.Now().UTC()

	for _, sample := range SampleUsers() {
		hash, err := s.passwords.HashPassword(sample.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", sample.Email, err)
		}
		u := &user.User{
			ID:        uuid.NewString(),
			Name:      sample.Name,
			Email:     sample.Email,
			Password:  hash,
			IsAdmin:   sample.IsAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create user %s: %w", sample.Email, err)
		}
	}

	for i, p := range SampleProducts() {
		p := p
		p.ID = uuid.NewString()
		// Keep listing order stable
		p.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		p.UpdatedAt = p.CreatedAt
		if err := s.products.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to create product %s: %w", p.Name, err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"users":    len(SampleUsers()),
		"products": len(SampleProducts()),
	}).Info("✅ Sample data inserted")
	return nil
}
