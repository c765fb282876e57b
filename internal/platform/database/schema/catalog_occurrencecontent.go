package schema

// RefOccurrenceContentTable represents the 'catalog.occurrencecontent' join table
type RefOccurrenceContentTable struct {
	Table        string
	OccurrenceID string
	ContentID    string
}

// RefOccurrenceContent is the schema definition for catalog.occurrencecontent
var RefOccurrenceContent = RefOccurrenceContentTable{
	Table:        "catalog.occurrencecontent",
	OccurrenceID: "occurrenceid",
	ContentID:    "contentid",
}

func (t RefOccurrenceContentTable) Columns() []string {
	return []string{t.OccurrenceID, t.ContentID}
}
