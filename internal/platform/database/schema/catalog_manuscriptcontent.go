package schema

// RefManuscriptContentTable represents the 'catalog.manuscriptcontent' join table
type RefManuscriptContentTable struct {
	Table        string
	ManuscriptID string
	ContentID    string
}

// RefManuscriptContent is the schema definition for catalog.manuscriptcontent
var RefManuscriptContent = RefManuscriptContentTable{
	Table:        "catalog.manuscriptcontent",
	ManuscriptID: "manuscriptid",
	ContentID:    "contentid",
}

func (t RefManuscriptContentTable) Columns() []string {
	return []string{t.ManuscriptID, t.ContentID}
}
