// Copyright (c) 2026 Vendo. All rights reserved.

package product

import (
	"context"
	"log/slog"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/validate"
	"github.com/vendohq/vendo/pkg/slug"
	"github.com/vendohq/vendo/pkg/uuid"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListProducts(context context.Context, userID string, limit, offset int) ([]*Product, int, error) {
	return service.repo.ListByOwner(context, userID, limit, offset)
}

// GetProduct returns a single product owned by userID.
//
// Reads go through the cache first. A cached product owned by someone else is
// reported as NotFound, exactly like a nonexistent one.
func (service *Service) GetProduct(context context.Context, id, userID string) (*Product, error) {
	cached, err := service.cache.Get(context, id)
	if err == nil {
		if cached.UserID != userID {
			return nil, apperr.NotFound("Product")
		}
		return cached, nil
	}

	// Any cache failure degrades to a direct read
	product, err := service.repo.GetByIDForOwner(context, id, userID)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, product); err != nil {
		service.logger.Debug("product_cache_set_failed", slog.String("product_id", id), slog.Any("error", err))
	}

	return product, nil
}

func (service *Service) CreateProduct(context context.Context, userID string, input CreateInput) (*Product, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Positive(FieldPrice, input.Price)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	product := &Product{
		ID:     uuid.New(),
		Name:   input.Name,
		Slug:   slug.From(input.Name),
		Price:  input.Price,
		UserID: userID,
	}

	if err := service.repo.Create(context, product); err != nil {
		return nil, err
	}

	service.logger.Info("product_created",
		slog.String("product_id", product.ID),
		slog.String("user_id", userID),
	)
	return product, nil
}

func (service *Service) UpdateProduct(context context.Context, id, userID string, input UpdateInput) (*Product, error) {
	product, err := service.repo.GetByIDForOwner(context, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = slug.From(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, product.Name).
		MaxLen(FieldName, product.Name, NameMaxLength).
		Positive(FieldPrice, product.Price)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, product); err != nil {
		return nil, err
	}

	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.Debug("product_cache_invalidate_failed", slog.String("product_id", id), slog.Any("error", err))
	}

	service.logger.Info("product_updated", slog.String("product_id", id))
	return product, nil
}

func (service *Service) DeleteProduct(context context.Context, id, userID string) error {
	if err := service.repo.Delete(context, id, userID); err != nil {
		return err
	}

	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.Debug("product_cache_invalidate_failed", slog.String("product_id", id), slog.Any("error", err))
	}

	service.logger.Warn("product_deleted", slog.String("product_id", id))
	return nil
}
