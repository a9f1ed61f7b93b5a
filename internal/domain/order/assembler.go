// internal/domain/order/assembler.go
package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// PlaceOrderRequest carries the checkout input that does not come from the cart
type PlaceOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	// TotalPrice is the total the client displayed. When present it must match.
	TotalPrice *decimal.Decimal `json:"total_price,omitempty"`
}

// Assembler turns a cart snapshot into a stored order
type Assembler struct {
	orders       Store
	stock        product.StockKeeper
	events       EventPublisher
	notifier     Notifier
	reserveStock bool
	logger       logrus.FieldLogger
	now          func() time.Time
}

// AssemblerOption configures an Assembler
type AssemblerOption func(*Assembler)

// WithStockReservation decrements stock for every line when enabled
func WithStockReservation(stock product.StockKeeper, enabled bool) AssemblerOption {
	return func(a *Assembler) {
		a.stock = stock
		a.reserveStock = enabled && stock != nil
	}
}

// WithEventPublisher sets where order.placed events go
func WithEventPublisher(events EventPublisher) AssemblerOption {
	return func(a *Assembler) {
		if events != nil {
			a.events = events
		}
	}
}

// WithNotifier sets the customer notifier
func WithNotifier(notifier Notifier) AssemblerOption {
	return func(a *Assembler) {
		if notifier != nil {
			a.notifier = notifier
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates a new order assembler
func NewAssembler(orders Store, logger logrus.FieldLogger, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		orders:   orders,
		events:   NoopPublisher{},
		notifier: NoopNotifier{},
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PlaceOrder validates the checkout input, copies the snapshot into order
// lines and writes a new unpaid, undelivered order owned by caller.
// Clearing the cart afterwards is the caller's job.
func (a *Assembler) PlaceOrder(ctx context.Context, snapshot []cart.LineItem, req *PlaceOrderRequest, caller *auth.Identity) (*Order, error) {
	if caller == nil || caller.UserID == "" {
		return nil, apperror.Authentication("not authorized, no token")
	}
	if err := validatePlacement(snapshot, req); err != nil {
		return nil, err
	}

	total := cart.Total(snapshot)
	if req.TotalPrice != nil && !req.TotalPrice.Round(2).Equal(total) {
		return nil, apperror.Validation("total_price %s does not match cart total %s",
			req.TotalPrice.StringFixed(2), total.StringFixed(2))
	}

	items := make([]OrderItem, len(snapshot))
	for i, line := range snapshot {
		items[i] = NewOrderItem(line)
	}

	now := a.now().UTC()
	order := &Order{
		UserID:          caller.UserID,
		OrderItems:      items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      total,
		IsPaid:          false,
		IsDelivered:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	reserved, err := a.reserve(ctx, items)
	if err != nil {
		return nil, err
	}

	if err := a.orders.Create(ctx, order); err != nil {
		a.release(ctx, reserved)
		return nil, asStoreError("create order", err)
	}

	log := a.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.TotalPrice.StringFixed(2),
		"items":    len(order.OrderItems),
	})
	log.Info("Order placed")

	// Side effects never fail a stored order
	if err := a.events.Publish(ctx, NewEvent(EventOrderPlaced, order, now)); err != nil {
		log.WithError(err).Warn("Failed to publish order event")
	}
	if err := a.notifier.OrderPlaced(ctx, order, caller); err != nil {
		log.WithError(err).Warn("Failed to send order confirmation")
	}

	return order, nil
}

func validatePlacement(snapshot []cart.LineItem, req *PlaceOrderRequest) error {
	if len(snapshot) == 0 {
		return apperror.Validation("no order items")
	}
	if req == nil {
		return apperror.Validation("shipping address is required")
	}
	if field := req.ShippingAddress.MissingField(); field != "" {
		return apperror.Validation("shipping %s is required", field)
	}
	if !req.PaymentMethod.IsValid() {
		return apperror.Validation("unsupported payment method %q", req.PaymentMethod)
	}

	seen := make(map[string]bool, len(snapshot))
	for _, line := range snapshot {
		if strings.TrimSpace(line.ProductID) == "" {
			return apperror.Validation("order item is missing a product id")
		}
		if seen[line.ProductID] {
			return apperror.Validation("product %s appears more than once", line.ProductID)
		}
		seen[line.ProductID] = true
		if line.Quantity < 1 {
			return apperror.Validation("quantity for %s must be at least 1", line.Name)
		}
		if line.Price.IsNegative() {
			return apperror.Validation("price for %s must not be negative", line.Name)
		}
		// Order lines are stored with two decimal places
		if !line.Price.Equal(line.Price.Round(2)) {
			return apperror.Validation("price for %s must have at most two decimal places", line.Name)
		}
	}
	return nil
}

// reserve decrements stock line by line and undoes earlier lines on the first failure
func (a *Assembler) reserve(ctx context.Context, items []OrderItem) ([]OrderItem, error) {
	if !a.reserveStock {
		return nil, nil
	}

	reserved := make([]OrderItem, 0, len(items))
	for _, item := range items {
		err := a.stock.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil {
			reserved = append(reserved, item)
			continue
		}

		a.release(ctx, reserved)
		switch {
		case errors.Is(err, product.ErrInsufficientStock):
			return nil, apperror.Validation("insufficient stock for %s", item.Name)
		case errors.Is(err, apperror.ErrNotFound):
			return nil, apperror.Validation("product %s is no longer available", item.ProductID)
		default:
			return nil, asStoreError("reserve stock", err)
		}
	}
	return reserved, nil
}

func (a *Assembler) release(ctx context.Context, items []OrderItem) {
	for _, item := range items {
		if err := a.stock.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			a.logger.WithError(err).WithFields(logrus.Fields{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			}).Error("Failed to restore reserved stock")
		}
	}
}

// asStoreError keeps taxonomy errors as they are and wraps anything else
func asStoreError(op string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Store(op, err)
}
