// Copyright (c) 2026 Vendo. All rights reserved.

package sale_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendohq/vendo/internal/core/sale"
	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/pkg/uuid"
)

// # Test Fixtures

type fakeRepository struct {
	sales    map[string]*sale.Sale
	products map[string]string // product id -> name
	users    map[string]string // user id -> username
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		sales:    map[string]*sale.Sale{},
		products: map[string]string{},
		users:    map[string]string{},
	}
}

func (f *fakeRepository) Create(_ context.Context, s *sale.Sale) error {
	s.CreatedAt = time.Now()
	f.sales[s.ID] = s
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*sale.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, apperr.NotFound("Sale")
	}
	// Joined projection
	hydrated := *s
	hydrated.ProductName = f.products[s.ProductID]
	hydrated.UserName = f.users[s.UserID]
	return &hydrated, nil
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*sale.Sale, int, error) {
	var owned []*sale.Sale
	for _, s := range f.sales {
		if s.UserID == userID {
			hydrated := *s
			hydrated.ProductName = f.products[s.ProductID]
			hydrated.UserName = f.users[s.UserID]
			owned = append(owned, &hydrated)
		}
	}
	total := len(owned)
	if offset >= len(owned) {
		return nil, total, nil
	}
	owned = owned[offset:]
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, total, nil
}

func (f *fakeRepository) ProductExists(_ context.Context, id string) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeRepository) UserExists(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func newTestService(t *testing.T) (*sale.Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sale.NewService(repo, logger), repo
}

// # Recording Sales

func TestService_CreateSale_JoinedReadModel(t *testing.T) {
	service, repo := newTestService(t)

	productID := uuid.New()
	userID := uuid.New()
	repo.products[productID] = "Espresso Machine"
	repo.users[userID] = "alice"

	recorded, err := service.CreateSale(context.Background(), sale.CreateInput{
		ProductID: productID,
		UserID:    userID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, productID, recorded.ProductID)
	assert.Equal(t, "Espresso Machine", recorded.ProductName)
	assert.Equal(t, userID, recorded.UserID)
	assert.Equal(t, "alice", recorded.UserName)
}

func TestService_CreateSale_MissingReferences(t *testing.T) {
	service, repo := newTestService(t)

	productID := uuid.New()
	userID := uuid.New()
	repo.products[productID] = "Grinder"
	repo.users[userID] = "alice"

	t.Run("unknown_product", func(t *testing.T) {
		_, err := service.CreateSale(context.Background(), sale.CreateInput{
			ProductID: uuid.New(),
			UserID:    userID,
		})
		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 404, appError.HTTPStatus)
		assert.Equal(t, "Product not found", appError.Message)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := service.CreateSale(context.Background(), sale.CreateInput{
			ProductID: productID,
			UserID:    uuid.New(),
		})
		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 404, appError.HTTPStatus)
		assert.Equal(t, "User not found", appError.Message)
	})

	t.Run("malformed_ids", func(t *testing.T) {
		_, err := service.CreateSale(context.Background(), sale.CreateInput{
			ProductID: "1",
			UserID:    "2",
		})
		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Len(t, appError.Details, 2)
	})
}

// # Listing

func TestService_ListSales_ScopedToUser(t *testing.T) {
	service, repo := newTestService(t)

	productID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()
	repo.products[productID] = "Kettle"
	repo.users[aliceID] = "alice"
	repo.users[bobID] = "bob"

	for i := 0; i < 3; i++ {
		_, err := service.CreateSale(context.Background(), sale.CreateInput{ProductID: productID, UserID: aliceID})
		require.NoError(t, err)
	}
	_, err := service.CreateSale(context.Background(), sale.CreateInput{ProductID: productID, UserID: bobID})
	require.NoError(t, err)

	sales, total, err := service.ListSales(context.Background(), aliceID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, sales, 3)
	for _, s := range sales {
		assert.Equal(t, "alice", s.UserName)
	}
}
