package studio

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Studio is the company credited with producing an anime title.
type Studio struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Describe registers the studio entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.RefStudio
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
		},
		Sortable: map[string]string{
			"id":   t.ID,
			"name": t.Name,
		},
	}
}

// CreateRequest is the payload for adding a studio.
type CreateRequest struct {
	Name string `json:"name"`
}

// UpdateRequest carries the optional fields of a studio patch.
type UpdateRequest struct {
	Name *string `json:"name"`
}
