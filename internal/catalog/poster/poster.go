package poster

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Poster holds the artwork URLs of one anime, one per display size.
type Poster struct {
	AnimeID  int     `json:"anime_id" db:"anime_id"`
	Fullsize *string `json:"fullsize" db:"fullsize"`
	Big      *string `json:"big" db:"big"`
	Small    *string `json:"small" db:"small"`
	Medium   *string `json:"medium" db:"medium"`
	Huge     *string `json:"huge" db:"huge"`
}

// Describe registers the poster entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.CatalogPoster
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.AnimeID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
		},
		Writable: map[string]crud.Field{
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
			"fullsize": {Column: t.Fullsize, Kind: crud.KindText},
			"big":      {Column: t.Big, Kind: crud.KindText},
			"small":    {Column: t.Small, Kind: crud.KindText},
			"medium":   {Column: t.Medium, Kind: crud.KindText},
			"huge":     {Column: t.Huge, Kind: crud.KindText},
		},
		Sortable: map[string]string{
			"anime_id": t.AnimeID,
		},
	}
}

// UpsertRequest replaces the artwork set of one anime.
type UpsertRequest struct {
	Fullsize *string `json:"fullsize"`
	Big      *string `json:"big"`
	Small    *string `json:"small"`
	Medium   *string `json:"medium"`
	Huge     *string `json:"huge"`
}
