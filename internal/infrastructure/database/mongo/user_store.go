// internal/infrastructure/database/mongo/user_store.go
package mongo

import (
	"context"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore implements user.Store on MongoDB
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a new user store
func NewUserStore(db *Database) *UserStore {
	return &UserStore{collection: db.DB().Collection(UsersCollection)}
}

// Create inserts a user. The unique email index rejects duplicates.
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = user.NormalizeEmail(u.Email)

	if _, err := s.collection.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.ErrDuplicateEmail
		}
		return apperror.Store("create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, translate("get user", "user", id, err)
	}
	return &u, nil
}

// GetByEmail retrieves a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	email = user.NormalizeEmail(email)
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, translate("get user", "user", email, err)
	}
	return &u, nil
}
