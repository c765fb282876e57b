// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

/*
Package role defines the relationship-role metadata for the Codex catalogue.

A role names the way one record relates to another: a person is the
"author" of an occurrence, the "scribe" of a manuscript, the "patron" who
commissioned it. Roles are static reference data: they are loaded once and
treated as immutable for the lifetime of a request.

Core Responsibility:

  - Metadata: System name, display name, and the entity kinds a role applies to.
  - Ordering: A nullable display rank that fixes the order of role groups.
  - Synthetics: Two well-known roles (content, subject) that live outside
    normal storage and are used for classification relationships.
*/
package role

// # Usage Tags

// Usage tags the entity kinds a role applies to.
type Usage string

const (
	UsageManuscript Usage = "manuscript"
	UsageOccurrence Usage = "occurrence"
	UsageDocument   Usage = "document"
)

// # Well-Known System Names

const (
	// SystemNameRelated is the catch-all fallback association. Targets are
	// removed from it when a more specific role covers the same pair.
	SystemNameRelated = "related"

	SystemNameAuthor = "author"
	SystemNameScribe = "scribe"
	SystemNamePatron = "patron"
	SystemNameEditor = "editor"
)

// # Role Metadata

// Role is the immutable metadata describing one relationship role.
type Role struct {
	ID         int     `json:"id"`
	SystemName string  `json:"system_name"`
	Name       string  `json:"name"`
	Usage      []Usage `json:"usage"`

	// ContributorRole marks roles that belong to the editorial
	// "contributor" axis (who worked on the record) rather than the
	// historical axis (who appears in the source).
	ContributorRole bool `json:"contributor_role"`

	// Rank is a tie-break flag used when two roles share the same order.
	Rank bool `json:"rank"`

	// Order is the display priority of the role group; nil sorts last.
	Order *int `json:"order"`
}

// AppliesTo reports whether the role is declared for the given entity kind.
func (r Role) AppliesTo(usage Usage) bool {
	for _, u := range r.Usage {
		if u == usage {
			return true
		}
	}
	return false
}

// # Synthetic Roles

// Synthetic roles carry negative IDs so they can never collide with
// stored roles.

// Content is the synthetic role linking a record to its content
// classification.
func Content() Role {
	return Role{
		ID:         -1,
		SystemName: "content",
		Name:       "Content",
		Usage:      []Usage{UsageManuscript, UsageOccurrence},
	}
}

// Subject is the synthetic role linking a record to the person or place
// it is about.
func Subject() Role {
	return Role{
		ID:         -2,
		SystemName: "subject",
		Name:       "Subject",
		Usage:      []Usage{UsageOccurrence},
	}
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldSystemName = "system_name"
	FieldName       = "name"
	FieldUsage      = "usage"
	FieldOrder      = "order"
)
