// Copyright (c) 2026 Vendo. All rights reserved.

// Package product implements the catalog of sellable items.
//
// Every product belongs to exactly one owning account. All reads and writes
// are owner-scoped: a product that exists but belongs to someone else is
// indistinguishable from one that does not exist.
package product

import "time"

// Product represents a sellable catalog item owned by a single account.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Price     float64   `json:"price"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput holds the caller-supplied fields for a new product.
type CreateInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateInput holds the optional fields of a partial product update.
type UpdateInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// Global field names for validation
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldPrice = "price"
)

// NameMaxLength bounds the accepted product name length.
const NameMaxLength = 200
