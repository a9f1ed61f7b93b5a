// internal/domain/product/store.go
package product

import (
	"context"
	"errors"
)

// ErrInsufficientStock is returned by DecrementStock when fewer units remain than requested
var ErrInsufficientStock = errors.New("insufficient stock")

// Reader is the read side of the catalog
type Reader interface {
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

// StockKeeper adjusts stock counts atomically
type StockKeeper interface {
	// DecrementStock removes quantity units only if at least that many remain.
	DecrementStock(ctx context.Context, id string, quantity int) error
	IncrementStock(ctx context.Context, id string, quantity int) error
}

// Store persists products. Implementations return apperror NotFound for
// missing ids and wrap driver failures as apperror Store errors.
type Store interface {
	Reader
	StockKeeper
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
