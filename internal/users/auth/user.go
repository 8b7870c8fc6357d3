// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package auth implements the user identity layer: registration, login,
profile access, and the role gate protecting catalog mutations.

Accounts live in users.account and are served by the same generic engine as
the catalog entities. Session credentials are signed HS256 tokens carrying
only the user id; authorization re-resolves the account record on every
check, so role changes apply immediately.
*/
package auth

import (
	"time"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// User is a registered account.
//
// The password digest never serializes to JSON, and the field set
// deliberately excludes it from the filter allow-list so it cannot be probed
// through list queries.
type User struct {
	ID               int       `json:"id" db:"id"`
	Email            *string   `json:"email" db:"email"`
	Login            string    `json:"login" db:"login"`
	Password         *string   `json:"-" db:"password"`
	Avatar           *string   `json:"avatar" db:"avatar"`
	Role             *string   `json:"role" db:"role"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}

// Describe registers the user entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.UserAccount
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.ID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"id":    {Column: t.ID, Kind: crud.KindInt},
			"login": {Column: t.Login, Kind: crud.KindText},
		},
		Writable: map[string]crud.Field{
			"email":    {Column: t.Email, Kind: crud.KindText},
			"login":    {Column: t.Login, Kind: crud.KindText},
			"password": {Column: t.Password, Kind: crud.KindText},
			"avatar":   {Column: t.Avatar, Kind: crud.KindText},
			"role":     {Column: t.Role, Kind: crud.KindText},
		},
		Sortable: map[string]string{
			"id":                t.ID,
			"login":             t.Login,
			"registration_date": t.RegistrationDate,
		},
	}
}

// RegistrationRequest is the payload for creating an account.
type RegistrationRequest struct {
	Email        string `json:"email"`
	Login        string `json:"login"`
	Password     string `json:"password"`
	CaptchaToken string `json:"token"`
}

// LoginRequest authenticates by login or email plus password.
type LoginRequest struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	CaptchaToken string `json:"token"`
}

// TokenResponse carries the freshly minted session token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
