// Copyright (c) 2026 Vendo. All rights reserved.

package sale

import "context"

// Repository defines the persistence contract for sales.
//
// The existence probes back the pre-insert referential checks; the insert
// itself is still protected by foreign keys, so a concurrent delete surfaces
// as a storage error rather than a dangling sale.
type Repository interface {
	Create(context context.Context, sale *Sale) error
	GetByID(context context.Context, id string) (*Sale, error)
	ListByUser(context context.Context, userID string, limit, offset int) ([]*Sale, int, error)
	ProductExists(context context.Context, id string) (bool, error)
	UserExists(context context.Context, id string) (bool, error)
}
