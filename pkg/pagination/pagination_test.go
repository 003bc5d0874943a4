// Copyright (c) 2026 Vendo. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendohq/vendo/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies parsing and clamping of query parameters.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/products", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "/products?page=3&limit=50", 3, 50},
		{"zero_page", "/products?page=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative_page", "/products?page=-2", pagination.DefaultPage, pagination.DefaultLimit},
		{"excessive_limit", "/products?limit=9999", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage_values", "/products?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, pagination.Params{Page: 10, Limit: 10}.Offset())
}

/*
TestNewMeta verifies total page calculation, including partial last pages.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 41)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 41, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	// Zero limit must not divide by zero.
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 100).TotalPages)
}
