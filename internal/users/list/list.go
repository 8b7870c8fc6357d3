// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package list implements per-user watch-lists: which titles an account tracks
and in what state. Entries are keyed by (user, anime), so each account holds
at most one entry per title.
*/
package list

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Watch states an entry can be in.
const (
	StatusWatching  = "watching"
	StatusPlanned   = "planned"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)

// Entry is one title on one user's watch-list.
type Entry struct {
	UserID  int    `json:"user_id" db:"user_id"`
	AnimeID int    `json:"anime_id" db:"anime_id"`
	Status  string `json:"status" db:"status"`
}

// Describe registers the watch-list entity with the generic engine. The
// composite key means single-key repository operations do not apply; the
// store handles writes itself and uses the engine for listings.
func Describe() crud.Descriptor {
	t := schema.UserList
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.UserID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"user_id":  {Column: t.UserID, Kind: crud.KindInt},
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
			"status":   {Column: t.Status, Kind: crud.KindText},
		},
		Writable: map[string]crud.Field{
			"user_id":  {Column: t.UserID, Kind: crud.KindInt},
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
			"status":   {Column: t.Status, Kind: crud.KindText},
		},
		Sortable: map[string]string{
			"anime_id": t.AnimeID,
		},
	}
}

// UpsertRequest sets the watch state of one title.
type UpsertRequest struct {
	Status string `json:"status"`
}
