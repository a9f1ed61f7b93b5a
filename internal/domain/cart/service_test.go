package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
)

type fakeCatalog map[string]product.Product

func (f fakeCatalog) Get(_ context.Context, id string) (*product.Product, error) {
	p, ok := f[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	return &p, nil
}

func (f fakeCatalog) List(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(f))
	for _, p := range f {
		out = append(out, p)
	}
	return out, nil
}

func newTestService() (*Service, *mapStorage) {
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Mouse", Image: "/images/mouse.jpg", Price: decimal.RequireFromString("29.99"), Stock: 3},
		"p2": {ID: "p2", Name: "Cable", Price: decimal.RequireFromString("4.50"), Stock: 0},
	}
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	storage := newMapStorage()
	return NewService(storage, catalog, logger), storage
}

func TestServiceAddItemSnapshotsProduct(t *testing.T) {
	svc, storage := newTestService()

	engine, err := svc.AddItem(context.Background(), "s-1", &AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	snap := engine.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "Mouse", snap[0].Name)
	assert.Equal(t, "/images/mouse.jpg", snap[0].Image)
	assert.Equal(t, "59.98", engine.Total().StringFixed(2))
	assert.Len(t, storage.slots["s-1"], 1)
}

func TestServiceAddItemCapsToStock(t *testing.T) {
	svc, _ := newTestService()

	engine, err := svc.AddItem(context.Background(), "s-1", &AddToCartRequest{ProductID: "p1", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, engine.Snapshot()[0].Quantity)
}

func TestServiceAddItemRejections(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s-1", &AddToCartRequest{ProductID: "p1", Quantity: 0})
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = svc.AddItem(ctx, "s-1", &AddToCartRequest{ProductID: "p2", Quantity: 1})
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = svc.AddItem(ctx, "s-1", &AddToCartRequest{ProductID: "nope", Quantity: 1})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestServiceRemoveAndClear(t *testing.T) {
	svc, storage := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s-1", &AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	engine, err := svc.RemoveItem(ctx, "s-1", "p1")
	require.NoError(t, err)
	assert.True(t, engine.IsEmpty())

	_, err = svc.AddItem(ctx, "s-1", &AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "s-1"))
	_, present := storage.slots["s-1"]
	assert.False(t, present)
}
