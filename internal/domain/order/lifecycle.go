// internal/domain/order/lifecycle.go
package order

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// Lifecycle reads orders and moves them through payment and delivery
type Lifecycle struct {
	orders Store
	events EventPublisher
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewLifecycle creates a new order lifecycle service
func NewLifecycle(orders Store, events EventPublisher, logger logrus.FieldLogger) *Lifecycle {
	if events == nil {
		events = NoopPublisher{}
	}
	return &Lifecycle{
		orders: orders,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// MarkDelivered sets the delivered flag and timestamp. Repeating it overwrites the timestamp.
func (l *Lifecycle) MarkDelivered(ctx context.Context, orderID string, caller *auth.Identity) (*Order, error) {
	return l.transition(ctx, caller, EventOrderDelivered, func(now time.Time) (*Order, error) {
		return l.orders.SetDelivered(ctx, orderID, now)
	})
}

// MarkPaid sets the paid flag and timestamp and records the provider's details
func (l *Lifecycle) MarkPaid(ctx context.Context, orderID string, details PaymentResult, caller *auth.Identity) (*Order, error) {
	return l.transition(ctx, caller, EventOrderPaid, func(now time.Time) (*Order, error) {
		return l.orders.SetPaid(ctx, orderID, now, details)
	})
}

// transition hands the write to the store, which touches only the fields of that transition
func (l *Lifecycle) transition(ctx context.Context, caller *auth.Identity, eventType EventType, write func(time.Time) (*Order, error)) (*Order, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}

	now := l.now().UTC()
	order, err := write(now)
	if err != nil {
		return nil, asStoreError("update order", err)
	}

	log := l.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"event":    string(eventType),
		"admin_id": caller.UserID,
	})
	log.Info("Order status updated")

	if err := l.events.Publish(ctx, NewEvent(eventType, order, now)); err != nil {
		log.WithError(err).Warn("Failed to publish order event")
	}

	return order, nil
}

// GetByID returns an order to its owner or to a privileged caller
func (l *Lifecycle) GetByID(ctx context.Context, orderID string, caller *auth.Identity) (*Order, error) {
	if caller == nil {
		return nil, apperror.Authentication("not authorized, no token")
	}

	order, err := l.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsOwnedBy(caller.UserID) && !auth.IsPrivileged(caller) {
		return nil, apperror.Forbidden("not authorized to view this order")
	}
	return order, nil
}

// ListMine returns the caller's orders, newest first
func (l *Lifecycle) ListMine(ctx context.Context, caller *auth.Identity) ([]Order, error) {
	if caller == nil || caller.UserID == "" {
		return nil, apperror.Authentication("not authorized, no token")
	}

	orders, err := l.orders.ListByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, asStoreError("list orders", err)
	}

	mine := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.IsOwnedBy(caller.UserID) {
			mine = append(mine, o)
		}
	}
	sortNewestFirst(mine)
	return mine, nil
}

// ListAll returns every order, newest first. Privileged only.
func (l *Lifecycle) ListAll(ctx context.Context, caller *auth.Identity) ([]Order, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}

	orders, err := l.orders.ListAll(ctx)
	if err != nil {
		return nil, asStoreError("list orders", err)
	}
	sortNewestFirst(orders)
	return orders, nil
}

func requirePrivileged(caller *auth.Identity) error {
	if caller == nil {
		return apperror.Authentication("not authorized, no token")
	}
	if !auth.IsPrivileged(caller) {
		return apperror.Forbidden("not authorized as an admin")
	}
	return nil
}

func sortNewestFirst(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
