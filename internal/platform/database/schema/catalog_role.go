package schema

// RefRoleTable represents the 'catalog.role' table
type RefRoleTable struct {
	Table           string
	ID              string
	SystemName      string
	Name            string
	Usage           string
	ContributorRole string
	Rank            string
	DisplayOrder    string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// RefRole is the schema definition for catalog.role
var RefRole = RefRoleTable{
	Table:           "catalog.role",
	ID:              "id",
	SystemName:      "systemname",
	Name:            "name",
	Usage:           "usage",
	ContributorRole: "contributorrole",
	Rank:            "rank",
	DisplayOrder:    "displayorder",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t RefRoleTable) Columns() []string {
	return []string{t.ID, t.SystemName, t.Name, t.Usage, t.ContributorRole, t.Rank, t.DisplayOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
