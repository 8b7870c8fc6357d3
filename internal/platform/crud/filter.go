// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud

import (
	"net/url"
	"sort"
	"strings"

	"github.com/phamduylong/anizora/pkg/pagination"
)

// Reserved query-string keys that never become predicates.
const (
	keyLimit     = "limit"
	keyOffset    = "offset"
	keyOrderBy   = "order_by"
	keyDirection = "direction"
)

// OrderRelevance is the synthetic order_by value resolved via a rating join
// rather than a column on the base entity.
const OrderRelevance = "relevance"

// Predicate is a single candidate filter condition: a raw key/value pair from
// the query string. Whether it is honored is decided against the entity's
// [Descriptor] at build time.
type Predicate struct {
	Name  string
	Value string
}

// Filter is the parsed, entity-agnostic description of a list request:
// candidate predicates, a pagination window, and an optional ordering.
type Filter struct {
	Predicates []Predicate
	Limit      int
	Offset     int
	OrderBy    string
	Direction  string
}

// ParseFilter extracts a [Filter] from URL query parameters.
//
// # Behavior
//
//   - limit/offset are clamped to the shared pagination bounds.
//   - order_by/direction are captured verbatim (validated at build time
//     against the entity's allow-list).
//   - Every other key becomes a candidate [Predicate]. Keys are sorted so the
//     generated SQL is deterministic for a given query string.
func ParseFilter(query url.Values) Filter {
	filter := Filter{
		Limit:     pagination.DefaultLimit,
		Offset:    pagination.DefaultOffset,
		OrderBy:   query.Get(keyOrderBy),
		Direction: strings.ToLower(query.Get(keyDirection)),
	}

	params := pagination.FromValues(query)
	filter.Limit = params.Limit
	filter.Offset = params.Offset

	names := make([]string, 0, len(query))
	for name := range query {
		switch name {
		case keyLimit, keyOffset, keyOrderBy, keyDirection:
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		filter.Predicates = append(filter.Predicates, Predicate{
			Name:  name,
			Value: query.Get(name),
		})
	}

	return filter
}
