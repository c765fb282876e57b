package schema

// RefContentTable represents the 'catalog.content' table
type RefContentTable struct {
	Table     string
	ID        string
	Name      string
	ParentID  string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// RefContent is the schema definition for catalog.content
var RefContent = RefContentTable{
	Table:     "catalog.content",
	ID:        "id",
	Name:      "name",
	ParentID:  "parentid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t RefContentTable) Columns() []string {
	return []string{t.ID, t.Name, t.ParentID, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
