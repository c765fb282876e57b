package schema

// RefManuscriptTable represents the 'catalog.manuscript' table
type RefManuscriptTable struct {
	Table     string
	ID        string
	City      string
	Library   string
	Shelf     string
	Date      string
	Status    string
	Public    string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// RefManuscript is the schema definition for catalog.manuscript
var RefManuscript = RefManuscriptTable{
	Table:     "catalog.manuscript",
	ID:        "id",
	City:      "city",
	Library:   "library",
	Shelf:     "shelf",
	Date:      "date",
	Status:    "status",
	Public:    "public",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t RefManuscriptTable) Columns() []string {
	return []string{t.ID, t.City, t.Library, t.Shelf, t.Date, t.Status, t.Public, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
