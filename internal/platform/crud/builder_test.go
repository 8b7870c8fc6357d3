// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduylong/anizora/internal/platform/crud"
)

// testDescriptor mirrors the anime registration closely enough to exercise
// every builder path: integer and text predicates, sortable columns, and the
// relevance join.
func testDescriptor() crud.Descriptor {
	fields := map[string]crud.Field{
		"id":   {Column: "id", Kind: crud.KindInt},
		"name": {Column: "name", Kind: crud.KindText},
		"year": {Column: "year", Kind: crud.KindInt},
	}
	return crud.Descriptor{
		Table:    "catalog.anime",
		PK:       "id",
		Columns:  []string{"id", "name", "year"},
		Fields:   fields,
		Writable: fields,
		Sortable: map[string]string{"id": "id", "name": "name", "year": "year"},
		Relevance: &crud.RelevanceJoin{
			Table:       "catalog.rating",
			FK:          "anime_id",
			OrderColumn: "average",
		},
	}
}

/*
TestBuildSelect_Predicates verifies the two predicate shapes: equality for
integer fields and case-insensitive containment for text fields.
*/
func TestBuildSelect_Predicates(t *testing.T) {
	d := testDescriptor()
	f := crud.Filter{
		Predicates: []crud.Predicate{
			{Name: "name", Value: "naruto"},
			{Name: "year", Value: "2007"},
		},
		Limit: 100,
	}

	query, args, err := crud.BuildSelect(d, f)
	require.NoError(t, err)

	assert.Contains(t, query, "name ILIKE $1")
	assert.Contains(t, query, "year = $2")
	assert.Equal(t, []any{"%naruto%", 2007, 100, 0}, args)
}

/*
TestBuildSelect_UnknownKeyIgnored checks the permissiveness policy: a filter
key absent from the field set changes nothing about the generated query.
*/
func TestBuildSelect_UnknownKeyIgnored(t *testing.T) {
	d := testDescriptor()

	base := crud.Filter{
		Predicates: []crud.Predicate{{Name: "year", Value: "1999"}},
		Limit:      50,
	}
	withNoise := crud.Filter{
		Predicates: []crud.Predicate{
			{Name: "password", Value: "probe"},
			{Name: "year", Value: "1999"},
		},
		Limit: 50,
	}

	baseQuery, baseArgs, err := crud.BuildSelect(d, base)
	require.NoError(t, err)
	noiseQuery, noiseArgs, err := crud.BuildSelect(d, withNoise)
	require.NoError(t, err)

	assert.Equal(t, baseQuery, noiseQuery)
	assert.Equal(t, baseArgs, noiseArgs)
}

/*
TestBuildSelect_InvalidIntValue ensures a recognized integer field with a
non-numeric value is rejected rather than silently dropped.
*/
func TestBuildSelect_InvalidIntValue(t *testing.T) {
	d := testDescriptor()
	f := crud.Filter{
		Predicates: []crud.Predicate{{Name: "year", Value: "not-a-year"}},
	}

	_, _, err := crud.BuildSelect(d, f)
	require.Error(t, err)
}

/*
TestBuildSelect_SortableOrdering covers ordering by a declared column and the
silent drop of order_by values outside the allow-list.
*/
func TestBuildSelect_SortableOrdering(t *testing.T) {
	d := testDescriptor()

	query, _, err := crud.BuildSelect(d, crud.Filter{OrderBy: "name", Direction: "desc", Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY name DESC")

	query, _, err = crud.BuildSelect(d, crud.Filter{OrderBy: "name", Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY name ASC")

	query, _, err = crud.BuildSelect(d, crud.Filter{OrderBy: "drop table", Direction: "desc", Limit: 10})
	require.NoError(t, err)
	assert.NotContains(t, query, "ORDER BY")
}

/*
TestBuildSelect_RelevanceOrdering verifies the rating join and the inverted
direction mapping: "asc" sorts best-rated first, "desc" worst-rated first.
*/
func TestBuildSelect_RelevanceOrdering(t *testing.T) {
	d := testDescriptor()

	query, _, err := crud.BuildSelect(d, crud.Filter{OrderBy: "relevance", Direction: "asc", Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "LEFT JOIN catalog.rating AS rel ON rel.anime_id = base.id")
	assert.Contains(t, query, "ORDER BY rel.average DESC")

	query, _, err = crud.BuildSelect(d, crud.Filter{OrderBy: "relevance", Direction: "desc", Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY rel.average ASC")
}

/*
TestBuildSelect_RelevanceWithoutJoinTable ensures entities without a rating
join treat "relevance" like any other unknown ordering.
*/
func TestBuildSelect_RelevanceWithoutJoinTable(t *testing.T) {
	d := testDescriptor()
	d.Relevance = nil

	query, _, err := crud.BuildSelect(d, crud.Filter{OrderBy: "relevance", Direction: "asc", Limit: 10})
	require.NoError(t, err)
	assert.NotContains(t, query, "JOIN")
	assert.NotContains(t, query, "ORDER BY")
}

/*
TestBuildCount_IndependentOfPagination checks that the count query carries
the predicate set but never the pagination window or the relevance join.
*/
func TestBuildCount_IndependentOfPagination(t *testing.T) {
	d := testDescriptor()
	f := crud.Filter{
		Predicates: []crud.Predicate{{Name: "name", Value: "naruto"}},
		Limit:      5,
		Offset:     95,
		OrderBy:    "relevance",
		Direction:  "asc",
	}

	query, args, err := crud.BuildCount(d, f)
	require.NoError(t, err)

	assert.Contains(t, query, "count(DISTINCT id)")
	assert.Contains(t, query, "name ILIKE $1")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
	assert.NotContains(t, query, "JOIN")
	assert.NotContains(t, query, "ORDER BY")
	assert.Equal(t, []any{"%naruto%"}, args)

	// Same filter, different window: identical count query.
	f.Limit, f.Offset = 100, 0
	again, againArgs, err := crud.BuildCount(d, f)
	require.NoError(t, err)
	assert.Equal(t, query, again)
	assert.Equal(t, args, againArgs)
}
