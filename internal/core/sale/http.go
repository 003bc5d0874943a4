// Copyright (c) 2026 Vendo. All rights reserved.

package sale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendohq/vendo/internal/platform/middleware"
	requestutil "github.com/vendohq/vendo/internal/platform/request"
	"github.com/vendohq/vendo/internal/platform/respond"
	"github.com/vendohq/vendo/internal/platform/validate"
	"github.com/vendohq/vendo/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the sale endpoints. Every route requires an
// authenticated caller.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", handler.listSales)
		r.Post("/", handler.createSale)
		r.Get("/{id}", handler.getSale)
	})
}

func (handler *Handler) listSales(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	sales, total, err := handler.service.ListSales(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sales, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSale(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sale, err := handler.service.GetSale(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sale)
}

func (handler *Handler) createSale(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sale, err := handler.service.CreateSale(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, sale)
}
