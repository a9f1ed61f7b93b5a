package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

func newTestService(emailCfg config.EmailConfig) *EmailService {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{
		App:   config.AppConfig{CompanyName: "Storefront"},
		Email: emailCfg,
	}
	s := NewEmailService(cfg, logger)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func placedOrder() *order.Order {
	return &order.Order{
		ID:     "order-1",
		UserID: "user-1",
		OrderItems: []order.OrderItem{
			{ProductID: "p1", Name: "Mouse", Quantity: 2, Price: decimal.RequireFromString("29.99")},
		},
		ShippingAddress: order.ShippingAddress{Address: "1 Main", City: "Springfield", PostalCode: "12345", Country: "US"},
		PaymentMethod:   order.PaymentMethodCreditCard,
		TotalPrice:      decimal.RequireFromString("59.98"),
		CreatedAt:       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

var customer = &auth.Identity{UserID: "user-1", Email: "john@example.com", Name: "John Doe"}

func TestOrderConfirmationContent(t *testing.T) {
	s := newTestService(config.EmailConfig{BaseURL: "http://shop.test"})

	email, err := s.orderConfirmation(placedOrder(), customer)
	require.NoError(t, err)

	assert.Equal(t, []string{"john@example.com"}, email.To)
	assert.Equal(t, "Order Confirmation - order-1", email.Subject)
	assert.Equal(t, EmailTypeOrderConfirmation, email.Type)
	assert.Contains(t, email.HTMLContent, "Hello John Doe")
	assert.Contains(t, email.HTMLContent, "2 x $29.99")
	assert.Contains(t, email.HTMLContent, "Total: $59.98")
	assert.Contains(t, email.HTMLContent, "http://shop.test/order/order-1")
	assert.Contains(t, email.HTMLContent, "Springfield 12345")
}

func TestBuildMessage(t *testing.T) {
	s := newTestService(config.EmailConfig{FromEmail: "noreply@example.com", FromName: "Storefront"})

	msg := string(s.buildMessage(&Email{To: []string{"a@example.com", "b@example.com"}, Subject: "Hi", HTMLContent: "<p>body</p>"}))

	assert.True(t, strings.HasPrefix(msg, "From: Storefront <noreply@example.com>\r\n"))
	assert.Contains(t, msg, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hi\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>body</p>"))
}

func TestOrderPlaced_DisabledProvider(t *testing.T) {
	s := newTestService(config.EmailConfig{Provider: "none"})

	assert.NoError(t, s.OrderPlaced(context.Background(), placedOrder(), customer))
}

func TestOrderPlaced_NoRecipient(t *testing.T) {
	s := newTestService(config.EmailConfig{Provider: "none"})

	assert.Error(t, s.OrderPlaced(context.Background(), placedOrder(), &auth.Identity{UserID: "user-1"}))
}

func TestOrderPlaced_Resend(t *testing.T) {
	var got ResendEmailRequest
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	s := newTestService(config.EmailConfig{
		Provider:      "resend",
		FromEmail:     "noreply@example.com",
		ResendAPIKey:  "re_test",
		ResendBaseURL: server.URL,
	})

	require.NoError(t, s.OrderPlaced(context.Background(), placedOrder(), customer))
	assert.Equal(t, "Bearer re_test", authHeader)
	assert.Equal(t, []string{"john@example.com"}, got.To)
	assert.Equal(t, "noreply@example.com", got.From)
	assert.Contains(t, got.HTML, "order-1")
}

func TestOrderPlaced_ResendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s := newTestService(config.EmailConfig{Provider: "resend", ResendAPIKey: "re_test", ResendBaseURL: server.URL})

	err := s.OrderPlaced(context.Background(), placedOrder(), customer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSendEmail_UnknownProvider(t *testing.T) {
	s := newTestService(config.EmailConfig{Provider: "pigeon"})

	assert.Error(t, s.SendEmail(context.Background(), &Email{To: []string{"a@example.com"}}))
}
