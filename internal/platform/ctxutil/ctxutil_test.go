// Copyright (c) 2026 Vendo. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendohq/vendo/internal/platform/ctxutil"
	"github.com/vendohq/vendo/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies logger injection and the default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// 1. Fallback returns the default logger, never nil
	assert.NotNil(t, ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve a specific instance
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Principal verifies identity injection and the anonymous fallback.
*/
func TestContext_Principal(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context yields nil
	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	// 2. Inject and retrieve
	principal := &sec.Principal{UserID: "user-1", Username: "alice"}
	ctx = ctxutil.WithPrincipal(ctx, principal)
	assert.Equal(t, principal, ctxutil.GetPrincipal(ctx))
}
