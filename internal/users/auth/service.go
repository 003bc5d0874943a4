// Copyright (c) 2026 Vendo. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/sec"
	"github.com/vendohq/vendo/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying access tokens.
type TokenProvider interface {
	// Issue creates a signed JWT string for the given subject.
	//
	// # Parameters
	//   - subject: The username of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	Issue(subject string, timeToLive time.Duration) (string, error)

	// Verify checks the signature and validity of a JWT string and returns
	// its claims, or a classified err when the token is unusable.
	Verify(tokenString string) (*sec.AccessClaims, error)
}

// # Internal Failure Tags

// Tagged credential failures. These never cross the HTTP boundary: the service
// collapses both into one identical Unauthorized response so a caller cannot
// probe which usernames exist. The tags survive only in the server-side error
// chain for structured logging.
var (
	// ErrUnknownUser means no account matched the presented username.
	ErrUnknownUser = errors.New("auth: unknown username")

	// ErrBadPassword means the account exists but the password hash did not match.
	ErrBadPassword = errors.New("auth: password mismatch")
)

// errInvalidCredentials is the single client-visible login failure. Both
// credential tags map onto byte-identical copies of this response.
func errInvalidCredentials(cause error) *apperr.AppError {
	return apperr.Unauthorized("Invalid username or password").WithCause(cause)
}

// errNotAuthenticated is the single client-visible token resolution failure.
// A forged token, an expired token, and a valid token whose account has since
// been deleted all produce indistinguishable copies of this response.
func errNotAuthenticated(cause error) *apperr.AppError {
	return apperr.Unauthorized("Invalid or expired token").WithCause(cause)
}

// Service implements user identity use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// token resolution logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new member, hashing the password before anything is
persisted. The plain-text password never leaves this call frame.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if username exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database. The unique index on username backstops
	// the pre-check above under concurrent registration.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

/*
Authenticate verifies a username/password pair against stored credentials.

Description: Performs exactly one storage lookup by username, then a
constant-time bcrypt comparison. The two failure modes stay distinguishable
here (for logging) but callers must never surface the distinction.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *User: The matched account
  - err: ErrUnknownUser, ErrBadPassword, or storage failures
*/
func (service *Service) Authenticate(context context.Context, username, password string) (*User, error) {

	// Single lookup by username
	user, err := service.userRepository.FindByUsername(context, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownUser, err)
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrBadPassword
	}

	return user, nil
}

// LoginSession represents a successfully established stateless session.
type LoginSession struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *User
}

/*
Login validates user credentials and issues a bearer access token.

Description: Runs [Service.Authenticate] and, on success, signs a short-lived
JWT whose subject is the username. Credential failures of any kind collapse
into one generic Unauthorized response to prevent account enumeration.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *LoginSession: Transport-ready token material
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, username, password string) (*LoginSession, error) {

	// Verify credentials. Generic message regardless of which check failed.
	user, err := service.Authenticate(context, username, password)
	if err != nil {
		return nil, errInvalidCredentials(err)
	}

	// Generate the short-lived access token
	accessToken, err := service.tokenProvider.Issue(user.Username, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   AccessTokenTTL,
		User:        user,
	}, nil
}

// # Identity Resolution

/*
ResolveToken resolves a bearer token string into a live account identity.

Description: Verifies the token signature, expiry, and subject, then performs
exactly one storage lookup to confirm the subject still maps to a live
account. A token for a since-deleted account fails in exactly the same shape
as a forged or expired one. No side effects; resolution is stateless.

Parameters:
  - context: context.Context
  - tokenString: string

Returns:
  - *sec.Principal: Identity built from the storage row, never from claims alone
  - err: Unauthorized (generic) with the precise cause retained for logging
*/
func (service *Service) ResolveToken(context context.Context, tokenString string) (*sec.Principal, error) {

	// Cryptographic verification: signature, algorithm, expiry, subject
	claims, err := service.tokenProvider.Verify(tokenString)
	if err != nil {
		return nil, errNotAuthenticated(err)
	}

	// Confirm the subject still exists. Tokens outlive accounts otherwise.
	user, err := service.userRepository.FindByUsername(context, claims.Subject)
	if err != nil {
		return nil, errNotAuthenticated(fmt.Errorf("%w: %v", ErrUnknownUser, err))
	}

	return &sec.Principal{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
