package director

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Director is a person credited with directing an anime title.
type Director struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Describe registers the director entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.RefDirector
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

// CreateRequest is the payload for adding a director.
type CreateRequest struct {
	Name string `json:"name"`
}

// UpdateRequest carries the optional fields of a director patch.
type UpdateRequest struct {
	Name *string `json:"name"`
}
