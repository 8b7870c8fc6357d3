package schema

// CatalogAnimeGenreTable represents the 'catalog.anime_genre' junction table
type CatalogAnimeGenreTable struct {
	Table   string
	AnimeID string
	GenreID string
}

// CatalogAnimeGenre is the schema definition for catalog.anime_genre
var CatalogAnimeGenre = CatalogAnimeGenreTable{
	Table:   "catalog.anime_genre",
	AnimeID: "anime_id",
	GenreID: "genre_id",
}

func (t CatalogAnimeGenreTable) Columns() []string {
	return []string{t.AnimeID, t.GenreID}
}
