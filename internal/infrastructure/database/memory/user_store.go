// internal/infrastructure/database/memory/user_store.go
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/user"
)

// UserStore implements user.Store with in-memory storage
type UserStore struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// NewUserStore creates a new in-memory user store
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]user.User),
	}
}

// Create stores a user; emails are unique
func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = user.NormalizeEmail(u.Email)
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = *u
	return nil
}

// GetByID returns the user with id
func (s *UserStore) GetByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[id]
	if !exists {
		return nil, apperror.NotFound("user", id)
	}
	return &u, nil
}

// GetByEmail returns the user registered with email
func (s *UserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = user.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

// DeleteAll removes every user
func (s *UserStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]user.User)
	return nil
}
