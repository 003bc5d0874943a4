// Copyright (c) 2026 Vendo. All rights reserved.

/*
Package account handles authenticated user profile access.

It exposes the private identity of the currently logged-in user. The profile
entity itself lives in the auth package; this package owns the read-side use
case and its transport.
*/
package account

import (
	"context"
	"fmt"

	"github.com/vendohq/vendo/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for account profile access.
type Service struct {
	userRepository auth.UserRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo auth.UserRepository) *Service {
	return &Service{userRepository: userRepo}
}

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}
