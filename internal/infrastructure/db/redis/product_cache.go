package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techhunt/api/internal/core/domain"
)

const defaultProductTTL = 5 * time.Minute

// ProductCache stores single product documents as JSON.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultProductTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

type cachedProduct struct {
	ID         string         `json:"id"`
	Tags       []string       `json:"tags"`
	Upvotes    int64          `json:"upvotes"`
	Reported   bool           `json:"reported"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Get returns ok=false on a cache miss.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("product cache get: %w", err)
	}

	var cp cachedProduct
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false, fmt.Errorf("product cache decode: %w", err)
	}
	return &domain.Product{
		ID:         cp.ID,
		Tags:       cp.Tags,
		Upvotes:    cp.Upvotes,
		Reported:   cp.Reported,
		Attributes: cp.Attributes,
	}, true, nil
}

// Set stores p for the cache TTL, replacing any previous entry.
func (c *ProductCache) Set(ctx context.Context, p *domain.Product) error {
	raw, err := json.Marshal(cachedProduct{
		ID:         p.ID,
		Tags:       p.Tags,
		Upvotes:    p.Upvotes,
		Reported:   p.Reported,
		Attributes: p.Attributes,
	})
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(p.ID), raw, c.ttl).Err()
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}
