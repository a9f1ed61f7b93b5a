// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

const identityKey = "identity"

// Authenticate resolves the Authorization header through the guard.
// Requests without a credential continue anonymously; an invalid credential is rejected.
func Authenticate(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := guard.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": apperror.PublicMessage(err),
			})
			return
		}

		if identity != nil {
			c.Set(identityKey, identity)
			c.Set("user_id", identity.UserID)
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous requests
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFromContext(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authorized, no token",
			})
			return
		}
		c.Next()
	}
}

// AdminRequired ensures the caller is a privileged identity
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authorized, no token",
			})
			return
		}

		if !auth.IsPrivileged(identity) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "not authorized as an admin",
			})
			return
		}

		c.Next()
	}
}

// IdentityFromContext returns the resolved caller, or nil for anonymous requests
func IdentityFromContext(c *gin.Context) *auth.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*auth.Identity)
	return identity
}
