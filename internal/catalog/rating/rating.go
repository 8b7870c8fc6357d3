package rating

import (
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Rating aggregates the external review scores attached to one anime.
// Every source is optional; Average is recomputed whenever scores change.
type Rating struct {
	AnimeID     int      `json:"anime_id" db:"anime_id"`
	Kp          *float64 `json:"kp_rating" db:"kp_rating"`
	Shikimori   *float64 `json:"shikimori_rating" db:"shikimori_rating"`
	Anidub      *float64 `json:"anidub_rating" db:"anidub_rating"`
	MyAnimeList *float64 `json:"myanimelist_rating" db:"myanimelist_rating"`
	WorldArt    *float64 `json:"worldart_rating" db:"worldart_rating"`
	Average     *float64 `json:"average" db:"average"`
}

// Describe registers the rating entity with the generic engine.
func Describe() crud.Descriptor {
	t := schema.CatalogRating
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.AnimeID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
		},
		Writable: map[string]crud.Field{
			"anime_id":           {Column: t.AnimeID, Kind: crud.KindInt},
			"kp_rating":          {Column: t.KpRating, Kind: crud.KindFloat},
			"shikimori_rating":   {Column: t.ShikimoriRating, Kind: crud.KindFloat},
			"anidub_rating":      {Column: t.AnidubRating, Kind: crud.KindFloat},
			"myanimelist_rating": {Column: t.MyAnimeListRating, Kind: crud.KindFloat},
			"worldart_rating":    {Column: t.WorldArtRating, Kind: crud.KindFloat},
			"average":            {Column: t.Average, Kind: crud.KindFloat},
		},
		Sortable: map[string]string{
			"anime_id": t.AnimeID,
			"average":  t.Average,
		},
	}
}

// UpsertRequest replaces the score set of one anime.
type UpsertRequest struct {
	Kp          *float64 `json:"kp_rating"`
	Shikimori   *float64 `json:"shikimori_rating"`
	Anidub      *float64 `json:"anidub_rating"`
	MyAnimeList *float64 `json:"myanimelist_rating"`
	WorldArt    *float64 `json:"worldart_rating"`
}

// AverageOf computes the mean of the provided scores, or nil when no source
// carries a value.
func (r UpsertRequest) AverageOf() *float64 {
	var sum float64
	var n int
	for _, score := range []*float64{r.Kp, r.Shikimori, r.Anidub, r.MyAnimeList, r.WorldArt} {
		if score != nil {
			sum += *score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
