package schema

// RefDocumentPersonRoleTable represents the 'catalog.documentpersonrole' join table
type RefDocumentPersonRoleTable struct {
	Table       string
	DocumentID  string
	PersonID    string
	RoleID      string
	Contributor string
}

// RefDocumentPersonRole is the schema definition for catalog.documentpersonrole
var RefDocumentPersonRole = RefDocumentPersonRoleTable{
	Table:       "catalog.documentpersonrole",
	DocumentID:  "documentid",
	PersonID:    "personid",
	RoleID:      "roleid",
	Contributor: "contributor",
}

func (t RefDocumentPersonRoleTable) Columns() []string {
	return []string{t.DocumentID, t.PersonID, t.RoleID, t.Contributor}
}
