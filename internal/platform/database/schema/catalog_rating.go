package schema

// CatalogRatingTable represents the 'catalog.rating' table
type CatalogRatingTable struct {
	Table             string
	AnimeID           string
	KpRating          string
	ShikimoriRating   string
	AnidubRating      string
	MyAnimeListRating string
	WorldArtRating    string
	Average           string
}

// CatalogRating is the schema definition for catalog.rating
var CatalogRating = CatalogRatingTable{
	Table:             "catalog.rating",
	AnimeID:           "anime_id",
	KpRating:          "kp_rating",
	ShikimoriRating:   "shikimori_rating",
	AnidubRating:      "anidub_rating",
	MyAnimeListRating: "myanimelist_rating",
	WorldArtRating:    "worldart_rating",
	Average:           "average",
}

func (t CatalogRatingTable) Columns() []string {
	return []string{
		t.AnimeID, t.KpRating, t.ShikimoriRating, t.AnidubRating,
		t.MyAnimeListRating, t.WorldArtRating, t.Average,
	}
}
