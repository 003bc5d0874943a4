// Copyright (c) 2026 Vendo. All rights reserved.

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a fresh random salt in every digest, so two calls with the
// same input produce different hash strings. The returned error is a
// configuration-level failure of the hashing primitive itself, never a
// property of the input secret.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// Comparison happens inside bcrypt in constant time. Any failure — wrong
// password, truncated digest, garbage input — reports false rather than an
// error: a stored hash that cannot be parsed simply does not verify.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
