// Copyright (c) 2026 Vendo. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendohq/vendo/internal/platform/sec"
)

/*
TestHashPassword_SaltRandomness verifies that hashing the same secret twice
produces different digests, yet both verify against the original secret.
*/
func TestHashPassword_SaltRandomness(t *testing.T) {
	const secret = "pw123"

	first, err := sec.HashPassword(secret)
	require.NoError(t, err)

	second, err := sec.HashPassword(secret)
	require.NoError(t, err)

	// Fresh salt per call: digests must differ.
	assert.NotEqual(t, first, second)

	// Both must still verify.
	assert.True(t, sec.CheckPasswordHash(secret, first))
	assert.True(t, sec.CheckPasswordHash(secret, second))
}

/*
TestCheckPasswordHash_Mismatch verifies that a different secret never matches.
*/
func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	assert.False(t, sec.CheckPasswordHash("battery-staple", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestCheckPasswordHash_MalformedStoredHash verifies that malformed stored
values report false instead of panicking or erroring.
*/
func TestCheckPasswordHash_MalformedStoredHash(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"truncated", "$2a$10$abc"},
		{"plaintext_equality_bait", "pw123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, sec.CheckPasswordHash("pw123", tt.stored))
			})
		})
	}
}

/*
TestHashPassword_NeverStoresPlaintext sanity-checks that the digest does not
contain the input secret.
*/
func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-value")
	require.NoError(t, err)
	assert.NotContains(t, hash, "s3cret-value")
}
