// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamduylong/anizora/internal/platform/crud"
)

/*
TestParseFilter_ReservedKeys checks that limit/offset/order_by/direction are
captured as window and ordering settings, never as predicates.
*/
func TestParseFilter_ReservedKeys(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "25")
	query.Set("offset", "50")
	query.Set("order_by", "name")
	query.Set("direction", "DESC")
	query.Set("status", "ongoing")

	f := crud.ParseFilter(query)

	assert.Equal(t, 25, f.Limit)
	assert.Equal(t, 50, f.Offset)
	assert.Equal(t, "name", f.OrderBy)
	assert.Equal(t, "desc", f.Direction)
	assert.Equal(t, []crud.Predicate{{Name: "status", Value: "ongoing"}}, f.Predicates)
}

/*
TestParseFilter_Clamping verifies the pagination bounds: oversized or negative
windows fall back to the defaults.
*/
func TestParseFilter_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", "", 100, 0},
		{"valid", "10", "20", 10, 20},
		{"over_max", "5000", "0", 100, 0},
		{"negative_limit", "-1", "0", 100, 0},
		{"negative_offset", "10", "-5", 10, 0},
		{"garbage", "ten", "twenty", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			if tt.limit != "" {
				query.Set("limit", tt.limit)
			}
			if tt.offset != "" {
				query.Set("offset", tt.offset)
			}

			f := crud.ParseFilter(query)
			assert.Equal(t, tt.wantLimit, f.Limit)
			assert.Equal(t, tt.wantOffset, f.Offset)
		})
	}
}

/*
TestParseFilter_DeterministicOrder ensures predicates come out sorted by key,
so the same query string always yields the same SQL.
*/
func TestParseFilter_DeterministicOrder(t *testing.T) {
	query := url.Values{}
	query.Set("year", "2007")
	query.Set("age", "16")
	query.Set("name", "naruto")

	f := crud.ParseFilter(query)

	assert.Equal(t, []crud.Predicate{
		{Name: "age", Value: "16"},
		{Name: "name", Value: "naruto"},
		{Name: "year", Value: "2007"},
	}, f.Predicates)
}
