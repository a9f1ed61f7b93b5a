// internal/domain/order/events.go
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// EventType names an order event
type EventType string

const (
	EventOrderPlaced    EventType = "order.placed"
	EventOrderPaid      EventType = "order.paid"
	EventOrderDelivered EventType = "order.delivered"
)

// Event is published after an order is written
type Event struct {
	Type       EventType       `json:"type"`
	OrderID    string          `json:"order_id"`
	UserID     string          `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent builds an event of type t for o
func NewEvent(t EventType, o *Order, at time.Time) Event {
	return Event{
		Type:       t,
		OrderID:    o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		ItemCount:  o.ItemCount(),
		OccurredAt: at,
	}
}

// EventPublisher delivers order events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Notifier tells the customer about a placed order
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order, customer *auth.Identity) error
}

// NoopPublisher discards events
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// NoopNotifier sends nothing
type NoopNotifier struct{}

func (NoopNotifier) OrderPlaced(context.Context, *Order, *auth.Identity) error { return nil }
