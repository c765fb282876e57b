package schema

// RefOccurrenceTable represents the 'catalog.occurrence' table
type RefOccurrenceTable struct {
	Table           string
	ID              string
	ManuscriptID    string
	Incipit         string
	Verses          string
	Date            string
	FoliumStart     string
	FoliumEnd       string
	PageStart       string
	PageEnd         string
	GeneralLocation string
	Public          string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// RefOccurrence is the schema definition for catalog.occurrence
var RefOccurrence = RefOccurrenceTable{
	Table:           "catalog.occurrence",
	ID:              "id",
	ManuscriptID:    "manuscriptid",
	Incipit:         "incipit",
	Verses:          "verses",
	Date:            "date",
	FoliumStart:     "foliumstart",
	FoliumEnd:       "foliumend",
	PageStart:       "pagestart",
	PageEnd:         "pageend",
	GeneralLocation: "generallocation",
	Public:          "public",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t RefOccurrenceTable) Columns() []string {
	return []string{t.ID, t.ManuscriptID, t.Incipit, t.Verses, t.Date, t.FoliumStart, t.FoliumEnd, t.PageStart, t.PageEnd, t.GeneralLocation, t.Public, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
