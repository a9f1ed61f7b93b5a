// internal/pkg/auth/guard.go
package auth

import (
	"github.com/your-org/storefront-api/internal/apperror"
)

// Identity is a resolved caller
type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// Guard resolves callers from credentials and answers privilege checks
type Guard struct {
	jwtManager *JWTManager
}

// NewGuard creates a new access guard
func NewGuard(jwtManager *JWTManager) *Guard {
	return &Guard{jwtManager: jwtManager}
}

// Resolve turns an Authorization header value into an identity.
// An empty credential resolves to the anonymous caller (nil, nil).
func (g *Guard) Resolve(credential string) (*Identity, error) {
	if credential == "" {
		return nil, nil
	}

	tokenString := ExtractTokenFromHeader(credential)
	if tokenString == "" {
		return nil, apperror.Authentication("invalid authorization header format")
	}

	claims, err := g.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.Authentication("invalid or expired token")
	}

	return &Identity{
		UserID:  claims.UserID,
		Email:   claims.Email,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}, nil
}

// IsPrivileged reports whether identity may perform administrative operations
func (g *Guard) IsPrivileged(identity *Identity) bool {
	return IsPrivileged(identity)
}

// IsPrivileged reports whether identity is a resolved admin
func IsPrivileged(identity *Identity) bool {
	return identity != nil && identity.IsAdmin
}
