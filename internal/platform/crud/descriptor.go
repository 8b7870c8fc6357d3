// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package crud implements the generic query-construction and persistence engine
shared by every catalog and account entity.

Each entity registers a [Descriptor]: its table, primary key, column list, and
the allow-lists that decide which untrusted query-string keys may become
predicates and which fields may be written. The [BuildSelect] / [BuildCount]
pair turns a parsed [Filter] into executable SQL, and [Repository] wraps the
generated queries with typed row collection via pgx.

Keeping the allow-lists declarative means no user-supplied string is ever
interpolated into SQL: field names resolve through the Descriptor or are
dropped, and values always travel as positional arguments.
*/
package crud

// Kind classifies a field's value type, which decides the predicate shape
// the query builder generates for it.
type Kind int

const (
	// KindInt fields filter by exact equality.
	KindInt Kind = iota

	// KindText fields filter by case-insensitive substring containment.
	KindText

	KindFloat
	KindTime
	KindTextArray
)

// Field binds a public field name to its backing column and value type.
type Field struct {
	Column string
	Kind   Kind
}

// RelevanceJoin describes the join used for the synthetic "relevance"
// ordering: a LEFT JOIN from the rating table back to the base entity.
type RelevanceJoin struct {
	// Table is the joined table, e.g. catalog.rating.
	Table string

	// FK is the joined table's column referencing the base entity's primary key.
	FK string

	// OrderColumn is the joined column the result set is ordered by.
	OrderColumn string
}

// Descriptor is the per-entity registration consumed by the query builder
// and the generic [Repository].
type Descriptor struct {
	// Table is the fully qualified table name, e.g. catalog.anime.
	Table string

	// PK is the primary key column.
	PK string

	// Columns lists every selectable column, in SELECT order.
	Columns []string

	// Fields is the filter allow-list: query-string keys honored as
	// predicates. Keys absent from this map are silently ignored.
	Fields map[string]Field

	// Writable is the write allow-list: every field that Create/Update and
	// attribute lookups may address. It is a superset of Fields for entities
	// whose sensitive columns (e.g. password) must never be filterable.
	Writable map[string]Field

	// Sortable maps order_by keys to columns. Keys absent from this map
	// (other than the synthetic "relevance") leave the result unordered.
	Sortable map[string]string

	// Relevance enables the synthetic "relevance" ordering when non-nil.
	Relevance *RelevanceJoin

	// AttributeOrder is an optional fixed ORDER BY clause body applied to
	// GetAllByAttribute results, e.g. "comment_date DESC".
	AttributeOrder string
}

// writableColumn resolves a write/lookup field name to its column.
func (d Descriptor) writableColumn(name string) (string, bool) {
	field, ok := d.Writable[name]
	if !ok {
		return "", false
	}
	return field.Column, true
}
