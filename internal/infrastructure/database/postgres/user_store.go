// internal/infrastructure/database/postgres/user_store.go
package postgres

import (
	"context"

	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/user"
	"gorm.io/gorm"
)

// UserStore implements user.Store on PostgreSQL
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new user store
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db.GetDB()}
}

// Create inserts a user; a taken email yields user.ErrDuplicateEmail
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicateEmail
		}
		return apperror.Store("create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate("get user", "user", id, err)
	}
	return &u, nil
}

// GetByEmail retrieves a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	email = user.NormalizeEmail(email)
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate("get user", "user", email, err)
	}
	return &u, nil
}
