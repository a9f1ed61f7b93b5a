// internal/infrastructure/database/redis/cart_storage.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-api/internal/domain/cart"
)

// CartStorage implements cart.Storage with one JSON value per session
type CartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStorage creates cart slots that expire ttl after their last write
func NewCartStorage(client *Client, ttl time.Duration) *CartStorage {
	return &CartStorage{
		client: client.GetClient(),
		ttl:    ttl,
	}
}

// Load returns the items stored for sessionID; a missing slot is an empty cart
func (s *CartStorage) Load(ctx context.Context, sessionID string) ([]cart.LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []cart.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return items, nil
}

// Save replaces the items stored for sessionID and refreshes the TTL
func (s *CartStorage) Save(ctx context.Context, sessionID string, items []cart.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Clear erases the slot for sessionID
func (s *CartStorage) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
