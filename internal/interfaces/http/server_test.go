package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/domain/user"
	"github.com/your-org/storefront-api/internal/infrastructure/database/memory"
	"github.com/your-org/storefront-api/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-api/internal/interfaces/http/routes"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) GenerateInvoice(o *order.Order) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 " + o.ID), nil
}

type testEnv struct {
	router     *gin.Engine
	stores     *memory.Stores
	jwtManager *auth.JWTManager
	renderer   *fakeRenderer
}

var (
	alice = auth.Identity{UserID: "alice", Email: "alice@example.com", Name: "Alice"}
	bob   = auth.Identity{UserID: "bob", Email: "bob@example.com", Name: "Bob"}
	admin = auth.Identity{UserID: "admin", Email: "admin@example.com", Name: "Admin", IsAdmin: true}
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "Storefront API", Version: "test", Environment: "test"},
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost:         4,
			RateLimitPerMinute: 1000,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
			CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSAllowedHeaders: []string{"Content-Type", "Authorization", "X-Session-ID"},
		},
	}
	logger, _ := test.NewNullLogger()

	stores := memory.NewStores()
	jwtManager := auth.NewJWTManager(cfg)
	renderer := &fakeRenderer{}

	deps := routes.Dependencies{
		Guard:     auth.NewGuard(jwtManager),
		Products:  product.NewService(stores.Products, logger),
		Carts:     cart.NewService(memory.NewCartStorage(), stores.Products, logger),
		Users:     user.NewService(stores.Users, cfg, jwtManager, logger),
		Assembler: order.NewAssembler(stores.Orders, logger, order.WithStockReservation(stores.Products, true)),
		Lifecycle: order.NewLifecycle(stores.Orders, nil, logger),
		Invoices:  renderer,
		Logger:    logger,
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	checks := map[string]HealthCheck{
		"store": stores.Health,
		"redis": func(ctx context.Context) error { return client.Ping(ctx).Err() },
	}
	srv := NewServer(cfg, deps, client, checks, logger)

	ctx := context.Background()
	require.NoError(t, stores.Products.Create(ctx, &product.Product{
		ID: "p1", Name: "Mouse", Image: "/images/mouse.jpg", Category: "Electronics",
		Price: decimal.RequireFromString("29.99"), Stock: 10,
	}))
	require.NoError(t, stores.Products.Create(ctx, &product.Product{
		ID: "p2", Name: "Mat", Image: "/images/mat.jpg", Category: "Electronics",
		Price: decimal.RequireFromString("5.55"), Stock: 0,
	}))

	return &testEnv{
		router:     srv.Router(),
		stores:     stores,
		jwtManager: jwtManager,
		renderer:   renderer,
	}
}

func (e *testEnv) token(t *testing.T, identity auth.Identity) string {
	t.Helper()
	token, err := e.jwtManager.GenerateAccessToken(identity)
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

var checkoutBody = map[string]interface{}{
	"shipping_address": map[string]string{
		"address": "1 Main St", "city": "X", "postal_code": "000", "country": "Y",
	},
	"payment_method": "Cash on Delivery",
}

func orderBody(items ...map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{"order_items": items}
	for k, v := range checkoutBody {
		body[k] = v
	}
	return body
}

var mouseLine = map[string]interface{}{
	"product_id": "p1", "name": "Mouse", "image": "/images/mouse.jpg", "price": 29.99, "quantity": 2,
}

func (e *testEnv) placeOrder(t *testing.T, identity auth.Identity) order.Order {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/orders", orderBody(mouseLine), map[string]string{"Authorization": e.token(t, identity)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed order.Order
	decode(t, w, &placed)
	return placed
}

func TestHealthAndReady(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var health map[string]interface{}
	decode(t, w, &health)
	assert.Equal(t, "healthy", health["status"])

	w = env.do(http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealthReportsFailingService(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{App: config.AppConfig{Environment: "test"}}
	srv := NewServer(cfg, routes.Dependencies{Logger: logger, Guard: auth.NewGuard(auth.NewJWTManager(cfg))}, nil,
		map[string]HealthCheck{"store": func(context.Context) error { return errors.New("down") }}, logger)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	// no session yet: one is minted
	w := env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "p1", "quantity": 2}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sessionID := w.Header().Get(handlers.SessionHeader)
	require.NotEmpty(t, sessionID)
	session := map[string]string{handlers.SessionHeader: sessionID}

	// same product again replaces the quantity
	w = env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "p1", "quantity": 4}, session)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cart.CartResponse
	decode(t, w, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 4, resp.Items[0].Quantity)
	assert.Equal(t, "119.96", resp.Totals.TotalPrice.StringFixed(2))

	// capped to stock
	w = env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "p1", "quantity": 50}, session)
	decode(t, w, &resp)
	assert.Equal(t, 10, resp.Items[0].Quantity)

	// out of stock and unknown products
	w = env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "p2", "quantity": 1}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "nope", "quantity": 1}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/v1/cart", nil, session)
	decode(t, w, &resp)
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Len(t, resp.Items, 1)

	w = env.do(http.MethodDelete, "/api/v1/cart/items/p1", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Empty(t, resp.Items)

	w = env.do(http.MethodDelete, "/api/v1/cart", nil, session)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartSessionFromCookie(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "cookie-session"})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-session", w.Header().Get(handlers.SessionHeader))
}

func TestCheckoutFromCart(t *testing.T) {
	env := newTestEnv(t)
	session := map[string]string{handlers.SessionHeader: "s-1"}

	w := env.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"product_id": "p1", "quantity": 2}, session)
	require.Equal(t, http.StatusOK, w.Code)

	// anonymous checkout is rejected and the cart survives
	w = env.do(http.MethodPost, "/api/v1/cart/checkout", checkoutBody, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	headers := map[string]string{handlers.SessionHeader: "s-1", "Authorization": env.token(t, alice)}
	w = env.do(http.MethodPost, "/api/v1/cart/checkout", checkoutBody, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed order.Order
	decode(t, w, &placed)
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, "alice", placed.UserID)
	assert.Equal(t, "59.98", placed.TotalPrice.StringFixed(2))
	assert.False(t, placed.IsPaid)
	assert.False(t, placed.IsDelivered)
	require.Len(t, placed.OrderItems, 1)
	assert.Equal(t, "Mouse", placed.OrderItems[0].Name)

	// cart is cleared and stock reserved
	var resp cart.CartResponse
	decode(t, env.do(http.MethodGet, "/api/v1/cart", nil, session), &resp)
	assert.Empty(t, resp.Items)

	p, err := env.stores.Products.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)

	// checking out the now empty cart fails validation
	w = env.do(http.MethodPost, "/api/v1/cart/checkout", checkoutBody, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	authHeader := map[string]string{"Authorization": env.token(t, alice)}

	placed := env.placeOrder(t, alice)
	assert.Equal(t, "59.98", placed.TotalPrice.StringFixed(2))
	assert.Equal(t, order.PaymentMethodCashOnDelivery, placed.PaymentMethod)
	assert.Equal(t, "1 Main St", placed.ShippingAddress.Address)

	t.Run("no token", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/orders", orderBody(mouseLine), nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/orders", orderBody(), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing city", func(t *testing.T) {
		body := orderBody(mouseLine)
		body["shipping_address"] = map[string]string{"address": "1 Main St", "postal_code": "000", "country": "Y"}
		w := env.do(http.MethodPost, "/api/v1/orders", body, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorMessage(t, w), "city")
	})

	t.Run("total mismatch", func(t *testing.T) {
		body := orderBody(mouseLine)
		body["total_price"] = 10
		w := env.do(http.MethodPost, "/api/v1/orders", body, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		line := map[string]interface{}{"product_id": "p2", "name": "Mat", "price": 5.55, "quantity": 1}
		w := env.do(http.MethodPost, "/api/v1/orders", orderBody(line), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Authorization", authHeader["Authorization"])
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetOrderAccess(t *testing.T) {
	env := newTestEnv(t)
	placed := env.placeOrder(t, alice)
	path := "/api/v1/orders/" + placed.ID

	tests := []struct {
		name     string
		identity *auth.Identity
		status   int
	}{
		{name: "anonymous", status: http.StatusUnauthorized},
		{name: "owner", identity: &alice, status: http.StatusOK},
		{name: "other user", identity: &bob, status: http.StatusForbidden},
		{name: "admin", identity: &admin, status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.identity != nil {
				headers["Authorization"] = env.token(t, *tt.identity)
			}
			assert.Equal(t, tt.status, env.do(http.MethodGet, path, nil, headers).Code)
		})
	}

	w := env.do(http.MethodGet, "/api/v1/orders/missing", nil, map[string]string{"Authorization": env.token(t, alice)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	first := env.placeOrder(t, alice)
	second := env.placeOrder(t, alice)
	env.placeOrder(t, bob)

	for _, path := range []string{"/api/v1/orders/mine", "/api/v1/orders/myorders"} {
		w := env.do(http.MethodGet, path, nil, map[string]string{"Authorization": env.token(t, alice)})
		require.Equal(t, http.StatusOK, w.Code)

		var mine []order.Order
		decode(t, w, &mine)
		require.Len(t, mine, 2)
		assert.Equal(t, second.ID, mine[0].ID)
		assert.Equal(t, first.ID, mine[1].ID)
	}

	w := env.do(http.MethodGet, "/api/v1/orders", nil, map[string]string{"Authorization": env.token(t, bob)})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodGet, "/api/v1/orders", nil, map[string]string{"Authorization": env.token(t, admin)})
	require.Equal(t, http.StatusOK, w.Code)
	var all []order.Order
	decode(t, w, &all)
	assert.Len(t, all, 3)
}

func TestMarkDelivered(t *testing.T) {
	env := newTestEnv(t)
	placed := env.placeOrder(t, alice)
	path := "/api/v1/orders/" + placed.ID + "/deliver"

	w := env.do(http.MethodPut, path, nil, map[string]string{"Authorization": env.token(t, alice)})
	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, err := env.stores.Orders.Get(context.Background(), placed.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDelivered)

	w = env.do(http.MethodPut, path, nil, map[string]string{"Authorization": env.token(t, admin)})
	require.Equal(t, http.StatusOK, w.Code)
	var delivered order.Order
	decode(t, w, &delivered)
	assert.True(t, delivered.IsDelivered)
	assert.NotNil(t, delivered.DeliveredAt)

	// non-admins are refused before the lookup
	w = env.do(http.MethodPut, "/api/v1/orders/missing/deliver", nil, map[string]string{"Authorization": env.token(t, bob)})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(http.MethodPut, "/api/v1/orders/missing/deliver", nil, map[string]string{"Authorization": env.token(t, admin)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkPaid(t *testing.T) {
	env := newTestEnv(t)
	placed := env.placeOrder(t, alice)
	path := "/api/v1/orders/" + placed.ID + "/pay"

	details := map[string]string{"id": "PAY-1", "status": "COMPLETED", "update_time": "2024-05-01T10:00:00Z", "email_address": "payer@example.com"}
	w := env.do(http.MethodPut, path, details, map[string]string{"Authorization": env.token(t, admin)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var paid order.Order
	decode(t, w, &paid)
	assert.True(t, paid.IsPaid)
	assert.NotNil(t, paid.PaidAt)
	assert.Equal(t, "PAY-1", paid.PaymentResult.ID)
	assert.False(t, paid.IsDelivered)

	w = env.do(http.MethodPut, path, nil, map[string]string{"Authorization": env.token(t, alice)})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPut, path, nil, map[string]string{"Authorization": env.token(t, admin)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMarkPaidChunkedBody(t *testing.T) {
	env := newTestEnv(t)
	placed := env.placeOrder(t, alice)
	path := "/api/v1/orders/" + placed.ID + "/pay"

	// A reader of unknown size leaves ContentLength at -1, as with chunked encoding
	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, io.NopCloser(strings.NewReader(body)))
		require.Equal(t, int64(-1), req.ContentLength)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", env.token(t, admin))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		return w
	}

	w := send(`{"id":"PAY-7","status":"COMPLETED"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid order.Order
	decode(t, w, &paid)
	assert.Equal(t, "PAY-7", paid.PaymentResult.ID)
	assert.Equal(t, "COMPLETED", paid.PaymentResult.Status)

	w = send(`{"id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoice(t *testing.T) {
	env := newTestEnv(t)
	placed := env.placeOrder(t, alice)
	path := "/api/v1/orders/" + placed.ID + "/invoice"

	w := env.do(http.MethodGet, path, nil, map[string]string{"Authorization": env.token(t, alice)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "INV-")
	assert.Contains(t, w.Body.String(), placed.ID)

	w = env.do(http.MethodGet, path, nil, map[string]string{"Authorization": env.token(t, bob)})
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.renderer.err = errors.New("wkhtmltopdf missing")
	w = env.do(http.MethodGet, path, nil, map[string]string{"Authorization": env.token(t, admin)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []product.Product
	decode(t, w, &list)
	assert.Len(t, list, 2)

	w = env.do(http.MethodGet, "/api/v1/products/p1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/v1/products/nope", nil, nil).Code)

	create := map[string]interface{}{"name": "Keyboard", "price": 49.99, "image": "/images/kb.jpg", "category": "Electronics", "stock": 3}
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/v1/products", create, nil).Code)
	assert.Equal(t, http.StatusForbidden, env.do(http.MethodPost, "/api/v1/products", create, map[string]string{"Authorization": env.token(t, alice)}).Code)

	adminHeader := map[string]string{"Authorization": env.token(t, admin)}
	w = env.do(http.MethodPost, "/api/v1/products", create, adminHeader)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created product.Product
	decode(t, w, &created)
	assert.Equal(t, "Keyboard", created.Name)

	w = env.do(http.MethodPut, "/api/v1/products/"+created.ID, map[string]interface{}{"stock": 0}, adminHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var updated product.Product
	decode(t, w, &updated)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, "Keyboard", updated.Name)

	w = env.do(http.MethodPost, "/api/v1/products", map[string]interface{}{"name": "", "price": 1}, adminHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/api/v1/products/"+created.ID, nil, adminHeader).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/v1/products/"+created.ID, nil, nil).Code)
}

func TestUserEndpoints(t *testing.T) {
	env := newTestEnv(t)

	register := map[string]string{"name": "John Doe", "email": "John@Example.com", "password": "john123"}
	w := env.do(http.MethodPost, "/api/v1/users/register", register, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered user.AuthResponse
	decode(t, w, &registered)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "john@example.com", registered.User.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(http.MethodPost, "/api/v1/users/register", register, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/users/login", map[string]string{"email": "john@example.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/v1/users/login", map[string]string{"email": "john@example.com", "password": "john123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loggedIn user.AuthResponse
	decode(t, w, &loggedIn)

	w = env.do(http.MethodGet, "/api/v1/users/profile", nil, map[string]string{"Authorization": "Bearer " + loggedIn.AccessToken})
	require.Equal(t, http.StatusOK, w.Code)
	var profile user.User
	decode(t, w, &profile)
	assert.Equal(t, "John Doe", profile.Name)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/v1/users/profile", nil, nil).Code)
}

func TestInvalidTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/orders/mine", nil, map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid or expired token", errorMessage(t, w))
}
