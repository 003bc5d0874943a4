// Copyright (c) 2026 Vendo. All rights reserved.

package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vendohq/vendo/internal/platform/constants"
)

// CacheTTL bounds how long a cached product may be served without hitting
// Postgres. Writes invalidate eagerly; the TTL only covers missed
// invalidations.
const CacheTTL = 5 * time.Minute

// RedisCache implements the Cache interface using Redis.
//
// Entries are JSON-encoded full product rows keyed by product ID. The owner
// check stays in the service layer so the cache never has to know about
// account scoping.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed product Cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get retrieves a cached product by ID.

Returns:
  - *Product: Decoded entity
  - error: ErrCacheMiss when absent or expired, connectivity errors otherwise
*/
func (cache *RedisCache) Get(context context.Context, id string) (*Product, error) {
	key := constants.RedisPrefixProduct + id

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_product_cache_get_failed: %w", err)
	}

	product := &Product{}
	if err := json.Unmarshal(payload, product); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, ErrCacheMiss
	}

	return product, nil
}

/*
Set stores a product under its ID with the package TTL.

Returns:
  - error: Encoding or connectivity errors
*/
func (cache *RedisCache) Set(context context.Context, product *Product) error {
	key := constants.RedisPrefixProduct + product.ID

	payload, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("redis_product_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, key, payload, CacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_product_cache_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate removes the cached entry for a product after a write.

Returns:
  - error: Deletion failures
*/
func (cache *RedisCache) Invalidate(context context.Context, id string) error {
	key := constants.RedisPrefixProduct + id

	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_product_cache_invalidate_failed: %w", err)
	}

	return nil
}
