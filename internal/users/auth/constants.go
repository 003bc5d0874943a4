// Copyright (c) 2026 Vendo. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// Short enough (30m) to bound the impact of a leaked token without
	// a refresh or revocation mechanism behind it.
	AccessTokenTTL = 30 * time.Minute

	// UsernameMinLength is the minimum accepted username length.
	UsernameMinLength = 3

	// UsernameMaxLength is the maximum accepted username length.
	UsernameMaxLength = 32

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8
)
