// Copyright (c) 2026 Vendo. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces defined where they are consumed.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Failure Taxonomy

// Internal token verification failures. Handlers never surface these
// distinctions to clients — all of them collapse into a single generic 401 at
// the HTTP boundary — but the service layer keeps them in the error chain for
// structured logging.
var (
	// ErrTokenMalformed means the string could not be parsed as a compact JWT.
	ErrTokenMalformed = errors.New("sec: token is malformed")

	// ErrTokenSignatureInvalid means the signature did not verify under the
	// configured key, or the token declared an unexpected signing algorithm.
	ErrTokenSignatureInvalid = errors.New("sec: token signature is invalid")

	// ErrTokenExpired means the signature verified but the expiry has passed.
	ErrTokenExpired = errors.New("sec: token is expired")

	// ErrTokenMissingSubject means the token carries no subject claim.
	ErrTokenMissingSubject = errors.New("sec: token subject claim is missing")
)

// # Identity Types

// AccessClaims represents the payload embedded inside a JWT access token.
//
// Only the registered claims are used: `sub` identifies the account by
// username and `exp` bounds the token lifetime. Possession of a token with a
// valid signature and an unexpired `exp` is the entire authorization state —
// there is no server-side session record.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// Principal is the resolved identity attached to an authenticated request.
//
// It is built from the storage row matched during identity resolution, never
// from token claims alone, so a token whose account has since been deleted
// never produces a Principal.
type Principal struct {
	// UserID is the account's immutable identifier.
	UserID string `json:"user_id"`

	// Username is the unique display name used as the token subject.
	Username string `json:"username"`
}

// # Token Codec

// TokenCodec signs and verifies compact JWT access tokens using HS256.
//
// The signing key is process-wide configuration, fixed at startup and
// read-only afterwards; rotating it invalidates every previously issued
// token. There is no key versioning.
type TokenCodec struct {
	secret []byte
	issuer string
}

// NewTokenCodec creates a [TokenCodec] from an explicitly injected secret.
//
// The secret comes from configuration, never from a compiled-in literal.
func NewTokenCodec(secret, issuer string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("sec: token secret must not be empty")
	}
	return &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a signed access token for the given subject.
//
// The claims set always carries an expiry (`exp = now + timeToLive`); no
// token issued here is valid indefinitely.
func (codec *TokenCodec) Issue(subject string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// # Flow
//
//  1. Parse the compact serialization.
//  2. Enforce the exact configured algorithm. Tokens asserting "none" or any
//     non-HS256 method are rejected outright, closing the classic
//     algorithm-confusion hole.
//  3. Validate the signature against the configured secret.
//  4. Require and validate the `exp` claim.
//  5. Require a non-empty `sub` claim.
//
// Failures are classified into the package sentinel errors so callers can log
// the precise reason while responding generically.
func (codec *TokenCodec) Verify(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return codec.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	if claims.Subject == "" {
		return nil, ErrTokenMissingSubject
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse failures onto the package sentinels.
//
// Order matters: the jwt library joins error values, and a garbage token must
// classify as malformed before any signature or claim checks are considered.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		// Anything else (missing exp, unverifiable claims) is treated as a
		// token we refuse to reason about.
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
