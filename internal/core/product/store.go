// Copyright (c) 2026 Vendo. All rights reserved.

package product

import (
	"context"
	"errors"
)

// ErrCacheMiss signals that the cache holds no entry for the requested product.
// It is never surfaced to callers outside this package.
var ErrCacheMiss = errors.New("product: cache miss")

// Repository defines the owner-scoped persistence contract for products.
type Repository interface {
	ListByOwner(context context.Context, userID string, limit, offset int) ([]*Product, int, error)
	GetByIDForOwner(context context.Context, id, userID string) (*Product, error)
	Create(context context.Context, product *Product) error
	Update(context context.Context, product *Product) error
	Delete(context context.Context, id, userID string) error
}

// Cache defines the read-through cache contract for single-product lookups.
//
// The cache is best-effort: every method may fail without affecting
// correctness, and entries expire on their own TTL. Writes to a product must
// invalidate its entry.
type Cache interface {
	Get(context context.Context, id string) (*Product, error)
	Set(context context.Context, product *Product) error
	Invalidate(context context.Context, id string) error
}
