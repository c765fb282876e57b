package schema

// RefOccurrenceRelatedTable represents the 'catalog.occurrencerelated' join table
type RefOccurrenceRelatedTable struct {
	Table        string
	OccurrenceID string
	RelatedID    string
	SharedVerses string
}

// RefOccurrenceRelated is the schema definition for catalog.occurrencerelated
var RefOccurrenceRelated = RefOccurrenceRelatedTable{
	Table:        "catalog.occurrencerelated",
	OccurrenceID: "occurrenceid",
	RelatedID:    "relatedid",
	SharedVerses: "sharedverses",
}

func (t RefOccurrenceRelatedTable) Columns() []string {
	return []string{t.OccurrenceID, t.RelatedID, t.SharedVerses}
}
