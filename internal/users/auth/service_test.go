// Copyright (c) 2026 Vendo. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/sec"
	"github.com/vendohq/vendo/internal/users/auth"
)

// # Test Fixtures

// fakeUserRepository is an in-memory UserRepository keyed by username.
type fakeUserRepository struct {
	byUsername map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byUsername: map[string]*auth.User{}}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range f.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := f.byUsername[user.Username]; exists {
		return apperr.Conflict("Username already exists")
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.byUsername[user.Username] = user
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeUserRepository) {
	t.Helper()
	codec, err := sec.NewTokenCodec("unit-test-signing-secret", "vendo.test")
	require.NoError(t, err)
	repo := newFakeUserRepository()
	return auth.NewService(repo, codec), repo
}

// # Registration

func TestService_Register_HashesPassword(t *testing.T) {
	service, repo := newTestService(t)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Password: "pw123-secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	// The stored credential must be a verifiable digest, never the plain text.
	stored := repo.byUsername["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw123-secret", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("pw123-secret", stored.PasswordHash))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "pw123-secret"})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "other-secret"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
	assert.Equal(t, 409, appError.HTTPStatus)
	// Same message whether the duplicate is caught by the lookup or later by
	// the unique index, so callers cannot tell the two paths apart.
	assert.Equal(t, "Username already exists", appError.Message)
}

// # Credential Verification

func TestService_Authenticate(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "pw123-secret"})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		user, err := service.Authenticate(context.Background(), "alice", "pw123-secret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("unknown_username", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "mallory", "pw123-secret")
		assert.ErrorIs(t, err, auth.ErrUnknownUser)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "alice", "wrong-secret")
		assert.ErrorIs(t, err, auth.ErrBadPassword)
	})
}

/*
TestService_Login_FailuresAreIndistinguishable verifies the anti-enumeration
guarantee: an unknown username and a wrong password must produce responses a
client cannot tell apart, while the server-side causes stay distinguishable
for logging.
*/
func TestService_Login_FailuresAreIndistinguishable(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "pw123-secret"})
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), "mallory", "pw123-secret")
	_, badPasswordErr := service.Login(context.Background(), "alice", "wrong-secret")

	unknownApp := apperr.As(unknownErr)
	badPasswordApp := apperr.As(badPasswordErr)
	require.NotNil(t, unknownApp)
	require.NotNil(t, badPasswordApp)

	// Client-visible shape is byte-identical.
	assert.Equal(t, unknownApp.Code, badPasswordApp.Code)
	assert.Equal(t, unknownApp.HTTPStatus, badPasswordApp.HTTPStatus)
	assert.Equal(t, unknownApp.Message, badPasswordApp.Message)
	assert.Equal(t, 401, unknownApp.HTTPStatus)

	// Server-side diagnostics keep the distinction.
	assert.ErrorIs(t, unknownErr, auth.ErrUnknownUser)
	assert.ErrorIs(t, badPasswordErr, auth.ErrBadPassword)
}

// # Token Issuance & Resolution

func TestService_Login_IssuesResolvableToken(t *testing.T) {
	service, _ := newTestService(t)

	registered, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "pw123-secret"})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "alice", "pw123-secret")
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, auth.AccessTokenTTL, session.ExpiresIn)
	assert.Equal(t, registered.ID, session.User.ID)

	// The issued token resolves back to the same account.
	principal, err := service.ResolveToken(context.Background(), session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, principal.UserID)
	assert.Equal(t, "alice", principal.Username)
}

func TestService_ResolveToken_GarbageToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ResolveToken(context.Background(), "not-a-token")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
}

/*
TestService_ResolveToken_DeletedAccount verifies that a still-valid token whose
account no longer exists fails in exactly the same client-visible shape as a
forged token.
*/
func TestService_ResolveToken_DeletedAccount(t *testing.T) {
	service, repo := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "pw123-secret"})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "alice", "pw123-secret")
	require.NoError(t, err)

	// Account disappears while the token is still cryptographically valid.
	delete(repo.byUsername, "alice")

	_, deletedErr := service.ResolveToken(context.Background(), session.AccessToken)
	_, forgedErr := service.ResolveToken(context.Background(), "not-a-token")

	deletedApp := apperr.As(deletedErr)
	forgedApp := apperr.As(forgedErr)
	require.NotNil(t, deletedApp)
	require.NotNil(t, forgedApp)

	assert.Equal(t, forgedApp.Code, deletedApp.Code)
	assert.Equal(t, forgedApp.HTTPStatus, deletedApp.HTTPStatus)
	assert.Equal(t, forgedApp.Message, deletedApp.Message)
}
