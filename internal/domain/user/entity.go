// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/pkg/auth"
	"gorm.io/gorm"
)

// User represents the user entity
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name      string    `gorm:"not null;size:255" json:"name" bson:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email" bson:"email"`
	Password  string    `gorm:"not null;size:255" json:"-" bson:"password"` // Don't return in JSON
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to handle business logic before user creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	// Email should be lowercase
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// Identity returns the guard identity for the user
func (u *User) Identity() auth.Identity {
	return auth.Identity{
		UserID:  u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
	}
}

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
