package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/product"
)

func TestOpenMemoryBackend(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}
	ctx := context.Background()

	backend, err := Open(ctx, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, backend.Driver)
	assert.NotNil(t, hook.LastEntry())
	require.NoError(t, backend.Health(ctx))

	require.NoError(t, backend.Products.Create(ctx, &product.Product{Name: "Mouse", Price: decimal.RequireFromString("29.99"), Stock: 1}))
	list, err := backend.Products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, backend.Purge(ctx))
	list, err = backend.Products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.NoError(t, backend.Close(ctx))
}

func TestOpenUnknownDriver(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}, logger)
	assert.Error(t, err)
}
