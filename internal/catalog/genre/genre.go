package genre

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Genre is a catalog classification tag applied to anime titles.
type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// Describe registers the genre entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.RefGenre
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.ID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"id":   {Column: t.ID, Kind: crud.KindInt},
			"name": {Column: t.Name, Kind: crud.KindText},
		},
		Writable: map[string]crud.Field{
			"name": {Column: t.Name, Kind: crud.KindText},
			"slug": {Column: t.Slug, Kind: crud.KindText},
		},
		Sortable: map[string]string{
			"id":   t.ID,
			"name": t.Name,
		},
	}
}

// CreateRequest is the payload for adding a genre.
type CreateRequest struct {
	Name string `json:"name"`
}

// UpdateRequest carries the optional fields of a genre patch.
type UpdateRequest struct {
	Name *string `json:"name"`
}
