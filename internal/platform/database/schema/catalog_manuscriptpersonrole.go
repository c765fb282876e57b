package schema

// RefManuscriptPersonRoleTable represents the 'catalog.manuscriptpersonrole' join table
type RefManuscriptPersonRoleTable struct {
	Table        string
	ManuscriptID string
	PersonID     string
	RoleID       string
}

// RefManuscriptPersonRole is the schema definition for catalog.manuscriptpersonrole
var RefManuscriptPersonRole = RefManuscriptPersonRoleTable{
	Table:        "catalog.manuscriptpersonrole",
	ManuscriptID: "manuscriptid",
	PersonID:     "personid",
	RoleID:       "roleid",
}

func (t RefManuscriptPersonRoleTable) Columns() []string {
	return []string{t.ManuscriptID, t.PersonID, t.RoleID}
}
