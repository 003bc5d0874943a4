// Copyright (c) 2026 Vendo. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the User entity and the logic for registration, credential
verification, token issuance, and bearer-token identity resolution.

# Architecture

This layer is the "Truth" of the system for identity. Authorization state is
entirely stateless: possession of a signed, unexpired access token whose
subject still maps to a live account is the whole story. There is no session
table and no revocation list.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered account able to own products and record sales.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
