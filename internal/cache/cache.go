package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores values of type T by key. Implementations must be safe to use
// when the backing store is absent.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T) error
	Delete(ctx context.Context, key string) error
}

// JSONCache keeps JSON encoded values in redis under "<prefix>:<key>".
// A nil *JSONCache or one built with a nil client is a no-op cache that
// always misses.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *JSONCache[T]) key(key string) string {
	return c.prefix + ":" + key
}

// Get returns nil without an error on a miss.
func (c *JSONCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached %s: %w", c.prefix, err)
	}

	return &value, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c == nil || c.client == nil || value == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.prefix, err)
	}

	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}

	return c.client.Del(ctx, c.key(key)).Err()
}
