// Package redis provides the automation listing cache backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
)

// Cache implements ports.ListingCache using Redis.
type Cache struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

var _ ports.ListingCache = (*Cache)(nil)

// Option configures the Cache.
type Option func(*Cache)

// WithTTL sets the expiration for the cached listing.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithKey sets the cache key.
func WithKey(key string) Option {
	return func(c *Cache) { c.key = key }
}

// New creates a Redis listing cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis listing cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		key:    "chatflow:automations:listing",
		ttl:    time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached listing, reporting a miss for absent or unreadable
// entries.
func (c *Cache) Get(ctx context.Context) ([]*flow.Record, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var listing []*flow.Record
	if err := json.Unmarshal(raw, &listing); err != nil {
		// A corrupt entry behaves like a miss; the next Put repairs it.
		return nil, false, nil
	}
	return listing, true, nil
}

// Put stores the listing under the configured TTL.
func (c *Cache) Put(ctx context.Context, listing []*flow.Record) error {
	raw, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("marshal listing: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
