package schema

// RefDocumentTable represents the 'catalog.document' table.
//
// Bibliographic records use single-table inheritance: the 'kind'
// discriminator selects which subtype columns are meaningful.
type RefDocumentTable struct {
	Table            string
	ID               string
	Kind             string
	Title            string
	Year             string
	Forthcoming      string
	City             string
	Publisher        string
	Volume           string
	Journal          string
	Number           string
	PageStart        string
	PageEnd          string
	RawPages         string
	BookTitle        string
	Institution      string
	URL              string
	LastAccessed     string
	Date             string
	Acknowledgements string
	Public           string
	CreatedAt        string
	UpdatedAt        string
	DeletedAt        string
}

// RefDocument is the schema definition for catalog.document
var RefDocument = RefDocumentTable{
	Table:            "catalog.document",
	ID:               "id",
	Kind:             "kind",
	Title:            "title",
	Year:             "year",
	Forthcoming:      "forthcoming",
	City:             "city",
	Publisher:        "publisher",
	Volume:           "volume",
	Journal:          "journal",
	Number:           "number",
	PageStart:        "pagestart",
	PageEnd:          "pageend",
	RawPages:         "rawpages",
	BookTitle:        "booktitle",
	Institution:      "institution",
	URL:              "url",
	LastAccessed:     "lastaccessed",
	Date:             "date",
	Acknowledgements: "acknowledgements",
	Public:           "public",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
	DeletedAt:        "deletedat",
}

func (t RefDocumentTable) Columns() []string {
	return []string{t.ID, t.Kind, t.Title, t.Year, t.Forthcoming, t.City, t.Publisher, t.Volume, t.Journal, t.Number, t.PageStart, t.PageEnd, t.RawPages, t.BookTitle, t.Institution, t.URL, t.LastAccessed, t.Date, t.Acknowledgements, t.Public, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
