// internal/domain/cart/engine.go
package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-api/internal/apperror"
)

// Storage is the durable key-value slot a cart lives in, keyed by session id
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Clear(ctx context.Context, sessionID string) error
}

// Engine holds one session's cart. Every transition goes through Reduce
// and is then written to Storage.
type Engine struct {
	storage   Storage
	sessionID string
	items     []LineItem
}

// Open loads the cart for sessionID. The stored slot is the only source of state.
func Open(ctx context.Context, storage Storage, sessionID string) (*Engine, error) {
	items, err := storage.Load(ctx, sessionID)
	if err != nil {
		return nil, apperror.Store("load cart", err)
	}

	// Collapse duplicates a hand-edited slot may carry
	state := []LineItem{}
	for _, item := range items {
		state = Reduce(state, AddItem{Item: item})
	}

	return &Engine{
		storage:   storage,
		sessionID: sessionID,
		items:     state,
	}, nil
}

// SessionID returns the key of the slot backing the engine
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Dispatch applies cmd and persists the result
func (e *Engine) Dispatch(ctx context.Context, cmd Command) error {
	next := Reduce(e.items, cmd)

	if _, ok := cmd.(ClearCart); ok {
		if err := e.storage.Clear(ctx, e.sessionID); err != nil {
			return apperror.Store("clear cart", err)
		}
	} else if err := e.storage.Save(ctx, e.sessionID, next); err != nil {
		return apperror.Store("save cart", err)
	}

	e.items = next
	return nil
}

// AddOrReplace inserts item or replaces the line sharing its product id
func (e *Engine) AddOrReplace(ctx context.Context, item LineItem) error {
	return e.Dispatch(ctx, AddItem{Item: item})
}

// Remove deletes the line for productID; absent ids are a no-op
func (e *Engine) Remove(ctx context.Context, productID string) error {
	return e.Dispatch(ctx, RemoveItem{ProductID: productID})
}

// Clear empties the cart and erases its slot
func (e *Engine) Clear(ctx context.Context) error {
	return e.Dispatch(ctx, ClearCart{})
}

// Snapshot returns a copy of the line items in insertion order
func (e *Engine) Snapshot() []LineItem {
	return clone(e.items)
}

// IsEmpty reports whether the cart has no lines
func (e *Engine) IsEmpty() bool {
	return len(e.items) == 0
}

// Total returns the sum of price * quantity, rounded half-up to two places
func (e *Engine) Total() decimal.Decimal {
	return Total(e.items)
}

// Totals summarises the current cart
func (e *Engine) Totals() Totals {
	totals := Totals{
		ItemCount:  len(e.items),
		TotalPrice: e.Total(),
	}
	for _, item := range e.items {
		totals.TotalQuantity += item.Quantity
	}
	return totals
}

// Response builds the API view of the cart
func (e *Engine) Response() *CartResponse {
	return &CartResponse{
		SessionID: e.sessionID,
		Items:     e.Snapshot(),
		Totals:    e.Totals(),
	}
}

// Total returns the rounded sum of price * quantity over items
func Total(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum.Round(2)
}
