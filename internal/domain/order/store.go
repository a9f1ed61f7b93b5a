// internal/domain/order/store.go
package order

import (
	"context"
	"time"
)

// Store persists orders. Create assigns the id. Lists are returned newest first.
// SetDelivered and SetPaid each write only their own fields in one atomic
// update and return the order as stored afterwards.
type Store interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	ListByOwner(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	SetDelivered(ctx context.Context, id string, at time.Time) (*Order, error)
	SetPaid(ctx context.Context, id string, at time.Time, result PaymentResult) (*Order, error)
}
