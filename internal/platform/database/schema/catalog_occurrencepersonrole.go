package schema

// RefOccurrencePersonRoleTable represents the 'catalog.occurrencepersonrole' join table
type RefOccurrencePersonRoleTable struct {
	Table        string
	OccurrenceID string
	PersonID     string
	RoleID       string
}

// RefOccurrencePersonRole is the schema definition for catalog.occurrencepersonrole
var RefOccurrencePersonRole = RefOccurrencePersonRoleTable{
	Table:        "catalog.occurrencepersonrole",
	OccurrenceID: "occurrenceid",
	PersonID:     "personid",
	RoleID:       "roleid",
}

func (t RefOccurrencePersonRoleTable) Columns() []string {
	return []string{t.OccurrenceID, t.PersonID, t.RoleID}
}
