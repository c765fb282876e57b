package schema

// RefPersonTable represents the 'catalog.person' table
type RefPersonTable struct {
	Table        string
	ID           string
	FirstName    string
	LastName     string
	Historical   string
	Modern       string
	Editorial    string
	Public       string
	BornDate     string
	DeathDate    string
	Attestations string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// RefPerson is the schema definition for catalog.person
var RefPerson = RefPersonTable{
	Table:        "catalog.person",
	ID:           "id",
	FirstName:    "firstname",
	LastName:     "lastname",
	Historical:   "historical",
	Modern:       "modern",
	Editorial:    "editorial",
	Public:       "public",
	BornDate:     "borndate",
	DeathDate:    "deathdate",
	Attestations: "attestations",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

func (t RefPersonTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Historical, t.Modern, t.Editorial, t.Public, t.BornDate, t.DeathDate, t.Attestations, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
