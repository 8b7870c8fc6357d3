// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
	"github.com/phamduylong/anizora/internal/platform/dberr"
)

// Store persists account records through the generic repository, plus the
// credential and profile lookups specific to users.
type Store struct {
	repo *crud.Repository[User]
	db   *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		repo: crud.NewRepository[User](db, Describe()),
		db:   db,
	}
}

func (store *Store) GetByID(context context.Context, id int) (*User, error) {
	return store.repo.GetByID(context, id)
}

func (store *Store) GetByLogin(context context.Context, login string) (*User, error) {
	return store.repo.GetByAttribute(context, "login", login)
}

func (store *Store) GetByEmail(context context.Context, email string) (*User, error) {
	return store.repo.GetByAttribute(context, "email", email)
}

// GetByCredentials matches an account by login or email together with the
// password digest, all in one query. A miss on either part is a plain
// NOT_FOUND; the caller decides on 401 semantics.
func (store *Store) GetByCredentials(context context.Context, loginOrEmail, passwordDigest string) (*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE (%s = $1 OR %s = $1) AND %s = $2
		LIMIT 1
	`,
		t.ID, t.Email, t.Login, t.Password, t.Avatar, t.Role, t.RegistrationDate,
		t.Table, t.Login, t.Email, t.Password,
	)

	rows, err := store.db.Query(context, query, loginOrEmail, passwordDigest)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_credentials")
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[User])
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_credentials")
	}
	return user, nil
}

// GetProfile fetches the caller's own account record. Unlike the optional
// lookups, the record must exist exactly once; anything else is an invariant
// violation surfaced as EXACTLY_ONE_EXPECTED.
func (store *Store) GetProfile(context context.Context, id int) (*User, error) {
	return store.repo.GetByIDStrict(context, id)
}

func (store *Store) Create(context context.Context, vals *crud.Values) (*User, error) {
	return store.repo.Create(context, vals)
}

func (store *Store) Update(context context.Context, id int, vals *crud.Values) (*User, error) {
	return store.repo.Update(context, id, vals)
}
