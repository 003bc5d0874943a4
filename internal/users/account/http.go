// Copyright (c) 2026 Vendo. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendohq/vendo/internal/platform/middleware"
	requestutil "github.com/vendohq/vendo/internal/platform/request"
	"github.com/vendohq/vendo/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements profile-related HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with account-specific routes.
//
// # Endpoints
//   - GET / : Returns the authenticated user's profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.me)
	})

	return router
}

/*
Me returns the profile of the currently authenticated user.

GET /api/v1/me

Description: Resolves the request identity and loads the matching account row.

Response:
  - 200: User: The caller's profile (password hash omitted)
  - 401: ErrUnauthorized: Missing or invalid bearer token
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
