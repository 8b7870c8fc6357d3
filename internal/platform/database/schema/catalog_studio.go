package schema

// RefStudioTable represents the 'catalog.studio' table
type RefStudioTable struct {
	Table string
	ID    string
	Name  string
}

// RefStudio is the schema definition for catalog.studio
var RefStudio = RefStudioTable{
	Table: "catalog.studio",
	ID:    "id",
	Name:  "name",
}

func (t RefStudioTable) Columns() []string {
	return []string{t.ID, t.Name}
}
