// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud

import (
	"strconv"
	"strings"

	"github.com/phamduylong/anizora/internal/platform/apperr"
)

// Table aliases used when the relevance join is in play.
const (
	aliasBase = "base"
	aliasRel  = "rel"
)

// BuildSelect translates a [Filter] into a paginated row query against the
// entity described by d.
//
// # Predicates
//
// Each candidate predicate whose name appears in d.Fields becomes a WHERE
// condition: equality for integer fields, case-insensitive substring
// containment for text fields. Names absent from d.Fields are dropped without
// error; unknown filter keys are no-ops, not failures.
//
// # Ordering
//
// order_by values found in d.Sortable order by that column, descending when
// direction is "desc" and ascending otherwise. The synthetic "relevance"
// value LEFT JOINs the rating table and orders by its average column —
// descending when direction is "asc" and ascending otherwise, matching the
// long-standing client contract. Rows without a rating stay in the result
// with a null sort key. Any other order_by value leaves the set unordered.
func BuildSelect(d Descriptor, f Filter) (string, []any, error) {
	relevance := f.OrderBy == OrderRelevance && d.Relevance != nil

	prefix := ""
	if relevance {
		prefix = aliasBase + "."
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(prefix + strings.Join(d.Columns, ", "+prefix))
	sb.WriteString(" FROM ")
	sb.WriteString(d.Table)
	if relevance {
		sb.WriteString(" AS " + aliasBase)
		sb.WriteString(" LEFT JOIN " + d.Relevance.Table + " AS " + aliasRel)
		sb.WriteString(" ON " + aliasRel + "." + d.Relevance.FK + " = " + aliasBase + "." + d.PK)
	}

	args, err := writePredicates(&sb, d, f, prefix)
	if err != nil {
		return "", nil, err
	}

	switch {
	case relevance:
		// Direction is inverted here on purpose: "asc" has always meant
		// best-rated first to API consumers.
		order := " ASC"
		if f.Direction == "asc" {
			order = " DESC"
		}
		sb.WriteString(" ORDER BY " + aliasRel + "." + d.Relevance.OrderColumn + order)
	case f.OrderBy != "":
		if column, ok := d.Sortable[f.OrderBy]; ok {
			order := " ASC"
			if f.Direction == "desc" {
				order = " DESC"
			}
			sb.WriteString(" ORDER BY " + column + order)
		}
	}

	sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)+1))
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)+2))
	args = append(args, f.Limit, f.Offset)

	return sb.String(), args, nil
}

// BuildCount translates a [Filter] into the matching total-count query.
//
// It applies the same predicate set as [BuildSelect] but never limit/offset,
// so the total always reflects the full match set. Counting distinct primary
// keys keeps the figure join-proof.
func BuildCount(d Descriptor, f Filter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT count(DISTINCT " + d.PK + ") FROM ")
	sb.WriteString(d.Table)

	args, err := writePredicates(&sb, d, f, "")
	if err != nil {
		return "", nil, err
	}

	return sb.String(), args, nil
}

// writePredicates appends the WHERE clause for every honored predicate and
// returns the collected positional arguments.
func writePredicates(sb *strings.Builder, d Descriptor, f Filter, prefix string) ([]any, error) {
	var args []any

	for _, p := range f.Predicates {
		field, ok := d.Fields[p.Name]
		if !ok {
			continue
		}

		if len(args) == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}

		switch field.Kind {
		case KindText:
			sb.WriteString(prefix + field.Column + " ILIKE $" + strconv.Itoa(len(args)+1))
			args = append(args, "%"+p.Value+"%")
		case KindInt:
			n, err := strconv.Atoi(p.Value)
			if err != nil {
				return nil, apperr.ValidationError("Invalid value for filter '" + p.Name + "'")
			}
			sb.WriteString(prefix + field.Column + " = $" + strconv.Itoa(len(args)+1))
			args = append(args, n)
		default:
			sb.WriteString(prefix + field.Column + " = $" + strconv.Itoa(len(args)+1))
			args = append(args, p.Value)
		}
	}

	return args, nil
}
