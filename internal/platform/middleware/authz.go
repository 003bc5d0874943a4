// Copyright (c) 2026 Vendo. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/ctxutil"
	"github.com/vendohq/vendo/internal/platform/respond"
	"github.com/vendohq/vendo/internal/platform/sec"
)

// IdentityResolver defines the interface needed to resolve bearer tokens in
// middleware.
//
// # Why an interface?
//
// Defining IdentityResolver here decouples the middleware from the auth
// service implementation, allowing us to easily inject fakes during unit
// testing. The resolver is expected to verify the token AND confirm the
// subject still maps to a live account — it is the single gate every
// protected operation depends on.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, tokenString string) (*sec.Principal, error)
}

// Authenticate extracts the bearer token from the Authorization header and
// resolves it to an account identity.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve the token via [IdentityResolver] (signature +
//     expiry + exactly one storage lookup).
//  4. Inject the resolved [*sec.Principal] into the request context.
//
// A present-but-unresolvable token always aborts with the resolver's generic
// 401 — stale tokens for deleted accounts and forged tokens are
// indistinguishable to the client.
func Authenticate(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Identity Resolution ────────────────────────────────────────
			principal, err := resolver.ResolveToken(request.Context(), parts[1])
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a resolved [*sec.Principal] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if principal == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
