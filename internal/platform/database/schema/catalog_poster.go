package schema

// CatalogPosterTable represents the 'catalog.poster' table
type CatalogPosterTable struct {
	Table    string
	AnimeID  string
	Fullsize string
	Big      string
	Small    string
	Medium   string
	Huge     string
}

// CatalogPoster is the schema definition for catalog.poster
var CatalogPoster = CatalogPosterTable{
	Table:    "catalog.poster",
	AnimeID:  "anime_id",
	Fullsize: "fullsize",
	Big:      "big",
	Small:    "small",
	Medium:   "medium",
	Huge:     "huge",
}

func (t CatalogPosterTable) Columns() []string {
	return []string{t.AnimeID, t.Fullsize, t.Big, t.Small, t.Medium, t.Huge}
}
