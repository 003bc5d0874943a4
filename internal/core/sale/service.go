// Copyright (c) 2026 Vendo. All rights reserved.

package sale

import (
	"context"
	"log/slog"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/validate"
	"github.com/vendohq/vendo/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateSale records a sale after confirming both referenced rows exist.
// A missing product or user surfaces as 404, not as a validation error.
func (service *Service) CreateSale(context context.Context, input CreateInput) (*Sale, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldProductID, input.ProductID).
		UUID(FieldUserID, input.UserID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	productExists, err := service.repo.ProductExists(context, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, apperr.NotFound("Product")
	}

	userExists, err := service.repo.UserExists(context, input.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.NotFound("User")
	}

	sale := &Sale{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
	}

	if err := service.repo.Create(context, sale); err != nil {
		return nil, err
	}

	service.logger.Info("sale_recorded",
		slog.String("sale_id", sale.ID),
		slog.String("product_id", sale.ProductID),
		slog.String("user_id", sale.UserID),
	)

	// Re-read through the joined projection so the response carries names.
	return service.repo.GetByID(context, sale.ID)
}

func (service *Service) GetSale(context context.Context, id string) (*Sale, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) ListSales(context context.Context, userID string, limit, offset int) ([]*Sale, int, error) {
	return service.repo.ListByUser(context, userID, limit, offset)
}
