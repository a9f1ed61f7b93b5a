package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/infrastructure/database/memory"
)

func newService() *product.Service {
	logger, _ := test.NewNullLogger()
	return product.NewService(memory.NewProductStore(), logger)
}

func TestCreateProduct(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, &product.CreateRequest{
		Name:     "  Mouse ",
		Price:    decimal.RequireFromString("29.989"),
		Category: "Electronics",
		Stock:    10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Mouse", p.Name)
	assert.Equal(t, "29.99", p.Price.StringFixed(2))

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := map[string]*product.CreateRequest{
		"missing name":   {Price: decimal.NewFromInt(1)},
		"negative price": {Name: "A", Price: decimal.NewFromInt(-1)},
		"negative stock": {Name: "A", Price: decimal.NewFromInt(1), Stock: -1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, req)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
		})
	}
}

func TestUpdateProductIsPartial(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, &product.CreateRequest{Name: "Mouse", Price: decimal.NewFromInt(10), Image: "/a.jpg", Stock: 4})
	require.NoError(t, err)

	zero := 0
	empty := ""
	price := decimal.RequireFromString("12.50")
	updated, err := svc.UpdateProduct(ctx, p.ID, &product.UpdateRequest{Price: &price, Stock: &zero, Image: &empty})
	require.NoError(t, err)

	assert.Equal(t, "Mouse", updated.Name)
	assert.Equal(t, "/a.jpg", updated.Image)
	assert.Equal(t, "12.50", updated.Price.StringFixed(2))
	assert.Equal(t, 0, updated.Stock)

	_, err = svc.UpdateProduct(ctx, "missing", &product.UpdateRequest{})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteProduct(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, &product.CreateRequest{Name: "Mouse", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))
	_, err = svc.GetProduct(ctx, p.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCapQuantity(t *testing.T) {
	p := product.Product{Stock: 3}
	assert.Equal(t, 2, p.CapQuantity(2))
	assert.Equal(t, 3, p.CapQuantity(7))
	assert.True(t, p.IsInStock())
}
