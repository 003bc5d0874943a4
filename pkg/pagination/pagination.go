// Copyright (c) 2026 Vendo. All rights reserved.

// Package pagination is the shared page/limit convention for list endpoints:
// every list handler parses [Params] from the query string and returns a
// [Meta] block in the response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPage is the first page. Pages are 1-indexed.
	DefaultPage = 1
	// DefaultLimit applies when the caller does not ask for a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// Params is the page window a caller requested.
type Params struct {
	Page  int
	Limit int
}

// Offset translates the window into a SQL OFFSET.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the full result set a page was cut from.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds response metadata, rounding TotalPages up so a partial
// final page still counts.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest reads "page" and "limit" from the query string. Missing,
// unparseable, or out-of-range values fall back to the defaults rather than
// failing the request.
func FromRequest(r *http.Request) Params {
	params := Params{
		Page:  queryInt(r, "page", DefaultPage),
		Limit: queryInt(r, "limit", DefaultLimit),
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 || params.Limit > MaxLimit {
		params.Limit = DefaultLimit
	}

	return params
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}
