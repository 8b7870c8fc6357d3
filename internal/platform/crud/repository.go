// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/dberr"
)

// Repository is the generic persistence layer shared by every entity kind.
//
// It is parameterized over the row struct T, whose fields carry `db:` tags
// matching the descriptor's columns (relation fields are tagged `db:"-"` and
// hydrated by entity stores). The Repository holds no per-call state; every
// method is safe for concurrent use.
type Repository[T any] struct {
	db   *pgxpool.Pool
	desc Descriptor
}

// NewRepository builds a [Repository] for the entity described by desc.
func NewRepository[T any](db *pgxpool.Pool, desc Descriptor) *Repository[T] {
	return &Repository[T]{db: db, desc: desc}
}

// Descriptor exposes the entity registration, letting stores reuse its
// table/column names in hand-written relation queries.
func (r *Repository[T]) Descriptor() Descriptor {
	return r.desc
}

// GetByID fetches a single record by primary key.
// A missing row surfaces as a NOT_FOUND application error.
func (r *Repository[T]) GetByID(ctx context.Context, id any) (*T, error) {
	query := "SELECT " + strings.Join(r.desc.Columns, ", ") +
		" FROM " + r.desc.Table +
		" WHERE " + r.desc.PK + " = $1 LIMIT 1"

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("get"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, r.action("get"))
	}
	return record, nil
}

// GetByIDStrict fetches a record that must exist exactly once.
//
// Unlike [Repository.GetByID], zero rows is not a recoverable "not found" but
// an invariant violation, and surfaces as EXACTLY_ONE_EXPECTED.
func (r *Repository[T]) GetByIDStrict(ctx context.Context, id any) (*T, error) {
	query := "SELECT " + strings.Join(r.desc.Columns, ", ") +
		" FROM " + r.desc.Table +
		" WHERE " + r.desc.PK + " = $1"

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("get"))
	}

	record, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.WrapExactlyOne(err, r.desc.Table)
	}
	return record, nil
}

// GetByAttribute fetches the first record whose named field equals value.
// Used for uniqueness probes such as login/email lookups.
func (r *Repository[T]) GetByAttribute(ctx context.Context, name string, value any) (*T, error) {
	column, ok := r.desc.writableColumn(name)
	if !ok {
		return nil, apperr.Internal(errUnknownField(r.desc.Table, name))
	}

	query := "SELECT " + strings.Join(r.desc.Columns, ", ") +
		" FROM " + r.desc.Table +
		" WHERE " + column + " = $1 LIMIT 1"

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("get"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, r.action("get"))
	}
	return record, nil
}

// GetAll executes the filtered row query and its independent count query,
// returning the requested window plus the total match count. Pagination never
// affects the total.
func (r *Repository[T]) GetAll(ctx context.Context, f Filter) ([]*T, int, error) {
	query, args, err := BuildSelect(r.desc, f)
	if err != nil {
		return nil, 0, err
	}
	countQuery, countArgs, err := BuildCount(r.desc, f)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, r.action("count"))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, r.action("list"))
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, 0, dberr.Wrap(err, r.action("list"))
	}
	return records, total, nil
}

// GetAllByAttribute fetches every record whose named field equals value,
// without pagination, plus the match count. When the descriptor declares an
// AttributeOrder the result is ordered by it.
func (r *Repository[T]) GetAllByAttribute(ctx context.Context, name string, value any) ([]*T, int, error) {
	column, ok := r.desc.writableColumn(name)
	if !ok {
		return nil, 0, apperr.Internal(errUnknownField(r.desc.Table, name))
	}

	query := "SELECT " + strings.Join(r.desc.Columns, ", ") +
		" FROM " + r.desc.Table +
		" WHERE " + column + " = $1"
	if r.desc.AttributeOrder != "" {
		query += " ORDER BY " + r.desc.AttributeOrder
	}
	countQuery := "SELECT count(*) FROM " + r.desc.Table + " WHERE " + column + " = $1"

	var total int
	if err := r.db.QueryRow(ctx, countQuery, value).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, r.action("count"))
	}

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, 0, dberr.Wrap(err, r.action("list"))
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, 0, dberr.Wrap(err, r.action("list"))
	}
	return records, total, nil
}

// Create inserts a new record from the given field set and returns the
// persisted row, including generated identifiers and server-assigned defaults.
func (r *Repository[T]) Create(ctx context.Context, vals *Values) (*T, error) {
	columns, err := r.resolveColumns(vals)
	if err != nil {
		return nil, err
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	query := "INSERT INTO " + r.desc.Table +
		" (" + strings.Join(columns, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING " + strings.Join(r.desc.Columns, ", ")

	rows, err := r.db.Query(ctx, query, vals.args...)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("create"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, r.action("create"))
	}
	return record, nil
}

// Update applies only the fields present in vals to the record identified by
// id and returns the refreshed row. An empty field set degrades to a plain
// read, leaving the record untouched.
func (r *Repository[T]) Update(ctx context.Context, id any, vals *Values) (*T, error) {
	if vals == nil || vals.Len() == 0 {
		return r.GetByID(ctx, id)
	}

	columns, err := r.resolveColumns(vals)
	if err != nil {
		return nil, err
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = column + " = $" + strconv.Itoa(i+2)
	}

	query := "UPDATE " + r.desc.Table +
		" SET " + strings.Join(assignments, ", ") +
		" WHERE " + r.desc.PK + " = $1" +
		" RETURNING " + strings.Join(r.desc.Columns, ", ")

	args := append([]any{id}, vals.args...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("update"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, r.action("update"))
	}
	return record, nil
}

// Remove deletes the record identified by id and returns the now-detached
// row for confirmation and logging.
func (r *Repository[T]) Remove(ctx context.Context, id any) (*T, error) {
	query := "DELETE FROM " + r.desc.Table +
		" WHERE " + r.desc.PK + " = $1" +
		" RETURNING " + strings.Join(r.desc.Columns, ", ")

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, r.action("delete"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, r.action("delete"))
	}
	return record, nil
}

// resolveColumns maps the field names in vals through the write allow-list.
// An unregistered field is a programming error, not client input, and fails
// loudly as an internal error.
func (r *Repository[T]) resolveColumns(vals *Values) ([]string, error) {
	columns := make([]string, len(vals.names))
	for i, name := range vals.names {
		column, ok := r.desc.writableColumn(name)
		if !ok {
			return nil, apperr.Internal(errUnknownField(r.desc.Table, name))
		}
		columns[i] = column
	}
	return columns, nil
}

// action builds the dberr action tag, e.g. "get_anime" for catalog.anime.
func (r *Repository[T]) action(verb string) string {
	table := r.desc.Table
	if i := strings.LastIndexByte(table, '.'); i >= 0 {
		table = table[i+1:]
	}
	return verb + "_" + table
}

func errUnknownField(table, name string) error {
	return fmt.Errorf("field %q is not registered on %s", name, table)
}
