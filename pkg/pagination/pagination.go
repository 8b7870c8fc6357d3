// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how window-based navigation (limit/offset) is requested via
// query parameters and how the resulting metadata is delivered in the API
// response envelope.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 100
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultOffset is the starting row offset.
	DefaultOffset = 0
)

// Params holds the parsed limit and offset from a request's query string.
type Params struct {
	Limit  int
	Offset int
}

// Meta is the pagination metadata included in API list responses.
//
// Total always reflects the full match count, independent of the requested
// limit/offset window.
type Meta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(limit, offset, total int) Meta {
	return Meta{
		Limit:  limit,
		Offset: offset,
		Total:  total,
	}
}

// FromRequest parses "limit" and "offset" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultLimit], [MaxLimit], or [DefaultOffset].
func FromRequest(r *http.Request) Params {
	return FromValues(r.URL.Query())
}

// FromValues parses "limit" and "offset" from already-extracted query values,
// applying the same clamping as [FromRequest].
func FromValues(query url.Values) Params {
	limit := parseIntParam(query, "limit", DefaultLimit)
	offset := parseIntParam(query, "offset", DefaultOffset)

	if limit < 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	if offset < 0 {
		offset = DefaultOffset
	}

	return Params{Limit: limit, Offset: offset}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) int {
	raw := query.Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
