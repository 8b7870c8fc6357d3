package anime

import (
	"github.com/phamduylong/anizora/internal/catalog/director"
	"github.com/phamduylong/anizora/internal/catalog/genre"
	"github.com/phamduylong/anizora/internal/catalog/poster"
	"github.com/phamduylong/anizora/internal/catalog/rating"
	"github.com/phamduylong/anizora/internal/catalog/studio"
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// ChartStatus is the fixed airing status the top-rated chart filters on.
const ChartStatus = "ongoing"

// Anime is the central catalog entity.
//
// Relation fields are tagged `db:"-"`: they live in their own tables and are
// hydrated by the [Store] after the base row query runs.
type Anime struct {
	ID               int      `json:"id" db:"id"`
	Name             string   `json:"name" db:"name"`
	AlternativeNames []string `json:"alternative_names" db:"alternative_names"`
	Status           string   `json:"status" db:"status"`
	CountSeries      int      `json:"count_series" db:"count_series"`
	Description      string   `json:"description" db:"description"`
	StudioID         int      `json:"studio_id" db:"studio_id"`
	Year             int      `json:"year" db:"year"`
	Season           int      `json:"season" db:"season"`
	Type             string   `json:"type" db:"type"`
	Age              string   `json:"age" db:"age"`
	KodikLink        string   `json:"kodik_link" db:"kodik_link"`

	Studio    *studio.Studio      `json:"studio,omitempty" db:"-"`
	Genres    []genre.Genre       `json:"genres,omitempty" db:"-"`
	Directors []director.Director `json:"directors,omitempty" db:"-"`
	Rating    *rating.Rating      `json:"rating,omitempty" db:"-"`
	Poster    *poster.Poster      `json:"poster,omitempty" db:"-"`
}

// Describe registers the anime entity with the generic engine, including the
// rating join behind the synthetic "relevance" ordering.
func Describe() crud.Descriptor {
	t := schema.CatalogAnime
	r := schema.CatalogRating
	writable := map[string]crud.Field{
		"name":              {Column: t.Name, Kind: crud.KindText},
		"alternative_names": {Column: t.AlternativeNames, Kind: crud.KindTextArray},
		"status":            {Column: t.Status, Kind: crud.KindText},
		"count_series":      {Column: t.CountSeries, Kind: crud.KindInt},
		"description":       {Column: t.Description, Kind: crud.KindText},
		"studio_id":         {Column: t.StudioID, Kind: crud.KindInt},
		"year":              {Column: t.Year, Kind: crud.KindInt},
		"season":            {Column: t.Season, Kind: crud.KindInt},
		"type":              {Column: t.Type, Kind: crud.KindText},
		"age":               {Column: t.Age, Kind: crud.KindText},
		"kodik_link":        {Column: t.KodikLink, Kind: crud.KindText},
	}
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.ID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"id":           {Column: t.ID, Kind: crud.KindInt},
			"name":         {Column: t.Name, Kind: crud.KindText},
			"status":       {Column: t.Status, Kind: crud.KindText},
			"count_series": {Column: t.CountSeries, Kind: crud.KindInt},
			"studio_id":    {Column: t.StudioID, Kind: crud.KindInt},
			"year":         {Column: t.Year, Kind: crud.KindInt},
			"season":       {Column: t.Season, Kind: crud.KindInt},
			"type":         {Column: t.Type, Kind: crud.KindText},
			"age":          {Column: t.Age, Kind: crud.KindText},
		},
		Writable: writable,
		Sortable: map[string]string{
			"id":           t.ID,
			"name":         t.Name,
			"status":       t.Status,
			"count_series": t.CountSeries,
			"year":         t.Year,
			"season":       t.Season,
			"type":         t.Type,
			"age":          t.Age,
		},
		Relevance: &crud.RelevanceJoin{
			Table:       r.Table,
			FK:          r.AnimeID,
			OrderColumn: r.Average,
		},
	}
}

// CreateRequest is the payload for adding a title to the catalog.
type CreateRequest struct {
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	Status           string   `json:"status"`
	CountSeries      int      `json:"count_series"`
	Description      string   `json:"description"`
	StudioID         int      `json:"studio_id"`
	Year             int      `json:"year"`
	Season           int      `json:"season"`
	Type             string   `json:"type"`
	Age              string   `json:"age"`
	KodikLink        string   `json:"kodik_link"`
	GenreIDs         []int    `json:"genre_ids"`
	DirectorIDs      []int    `json:"director_ids"`
}

// UpdateRequest carries the optional fields of a title patch. Only fields
// present in the request body are written.
type UpdateRequest struct {
	Name             *string   `json:"name"`
	AlternativeNames *[]string `json:"alternative_names"`
	Status           *string   `json:"status"`
	CountSeries      *int      `json:"count_series"`
	Description      *string   `json:"description"`
	StudioID         *int      `json:"studio_id"`
	Year             *int      `json:"year"`
	Season           *int      `json:"season"`
	Type             *string   `json:"type"`
	Age              *string   `json:"age"`
	KodikLink        *string   `json:"kodik_link"`
	GenreIDs         *[]int    `json:"genre_ids"`
	DirectorIDs      *[]int    `json:"director_ids"`
}
