package schema

// RefDirectorTable represents the 'catalog.director' table
type RefDirectorTable struct {
	Table string
	ID    string
	Name  string
}

// RefDirector is the schema definition for catalog.director
var RefDirector = RefDirectorTable{
	Table: "catalog.director",
	ID:    "id",
	Name:  "name",
}

func (t RefDirectorTable) Columns() []string {
	return []string{t.ID, t.Name}
}
