package schema

// CatalogAnimeDirectorTable represents the 'catalog.anime_director' junction table
type CatalogAnimeDirectorTable struct {
	Table      string
	AnimeID    string
	DirectorID string
}

// CatalogAnimeDirector is the schema definition for catalog.anime_director
var CatalogAnimeDirector = CatalogAnimeDirectorTable{
	Table:      "catalog.anime_director",
	AnimeID:    "anime_id",
	DirectorID: "director_id",
}

func (t CatalogAnimeDirectorTable) Columns() []string {
	return []string{t.AnimeID, t.DirectorID}
}
