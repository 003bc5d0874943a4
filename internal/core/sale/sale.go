// Copyright (c) 2026 Vendo. All rights reserved.

// Package sale records completed sales linking a product to a buying account.
//
// Sales are immutable once recorded. Reads return a denormalized view joining
// the product and account names so clients never need follow-up lookups.
package sale

import "time"

// Sale is the denormalized read model of a recorded sale.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateInput holds the caller-supplied references for a new sale.
type CreateInput struct {
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
}

// Global field names for validation
const (
	FieldID        = "id"
	FieldProductID = "product_id"
	FieldUserID    = "user_id"
)
