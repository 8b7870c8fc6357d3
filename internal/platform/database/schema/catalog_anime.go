package schema

// CatalogAnimeTable represents the 'catalog.anime' table
type CatalogAnimeTable struct {
	Table            string
	ID               string
	Name             string
	AlternativeNames string
	Status           string
	CountSeries      string
	Description      string
	StudioID         string
	Year             string
	Season           string
	Type             string
	Age              string
	KodikLink        string
}

// CatalogAnime is the schema definition for catalog.anime
var CatalogAnime = CatalogAnimeTable{
	Table:            "catalog.anime",
	ID:               "id",
	Name:             "name",
	AlternativeNames: "alternative_names",
	Status:           "status",
	CountSeries:      "count_series",
	Description:      "description",
	StudioID:         "studio_id",
	Year:             "year",
	Season:           "season",
	Type:             "type",
	Age:              "age",
	KodikLink:        "kodik_link",
}

func (t CatalogAnimeTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.AlternativeNames, t.Status, t.CountSeries,
		t.Description, t.StudioID, t.Year, t.Season, t.Type, t.Age, t.KodikLink,
	}
}
