package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "Storefront API"},
		JWT:      config.JWTConfig{Secret: "0123456789abcdef0123456789abcdef", AccessTokenExpiry: time.Hour},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(Identity{UserID: "u-1", Email: "jane@example.com", Name: "Jane", IsAdmin: true})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Jane", claims.Name)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewJWTManager(testConfig())
	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := manager.GenerateAccessToken(Identity{UserID: "u-1"})
	require.NoError(t, err)

	manager.now = time.Now
	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	token, err := NewJWTManager(other).GenerateAccessToken(Identity{UserID: "u-1"})
	require.NoError(t, err)

	_, err = NewJWTManager(testConfig()).ValidateToken(token)
	assert.Error(t, err)
}

func TestGuardResolve(t *testing.T) {
	manager := NewJWTManager(testConfig())
	guard := NewGuard(manager)

	token, err := manager.GenerateAccessToken(Identity{UserID: "u-7", Email: "sam@example.com", Name: "Sam"})
	require.NoError(t, err)

	t.Run("anonymous", func(t *testing.T) {
		identity, err := guard.Resolve("")
		assert.NoError(t, err)
		assert.Nil(t, identity)
	})

	t.Run("bearer token", func(t *testing.T) {
		identity, err := guard.Resolve("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "u-7", identity.UserID)
		assert.False(t, guard.IsPrivileged(identity))
	})

	t.Run("malformed header", func(t *testing.T) {
		_, err := guard.Resolve("Token " + token)
		assert.True(t, errors.Is(err, apperror.ErrAuthentication))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := guard.Resolve("Bearer not-a-jwt")
		assert.True(t, errors.Is(err, apperror.ErrAuthentication))
	})
}

func TestIsPrivileged(t *testing.T) {
	assert.False(t, IsPrivileged(nil))
	assert.False(t, IsPrivileged(&Identity{UserID: "u"}))
	assert.True(t, IsPrivileged(&Identity{UserID: "u", IsAdmin: true}))
}

func TestPasswordManager(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	_, err := pm.HashPassword("12345")
	assert.Error(t, err)

	hash, err := pm.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, pm.VerifyPassword("secret1", hash))
	assert.Error(t, pm.VerifyPassword("secret2", hash))
}
