// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

/*
Package catalog defines the core domain entities of the Codex catalogue.

It models the four record families of the collection (persons,
manuscripts, textual occurrences, and bibliographic publications) and
the derived views computed over them: merged role lists with effective
visibility, citation strings, and collation-stable sort keys.

Core Responsibility:

  - Records: Persons, manuscripts, occurrences (poems as copied in a
    manuscript), and document subtypes (books, articles, chapters…).
  - Aggregation: Each record folds its direct and occurrence-inherited
    role associations through the relation engine.
  - Presentation: Citation and sort-key generation, display projections,
    and flattened search-index documents.

Records are assembled once per request from stored rows, decorated during
assembly, then treated as read-only. Derived views are memoised per
instance; nothing invalidates them within a request.
*/
package catalog

// # Identity

// Entity is the embedded identity every catalogue record carries.
type Entity struct {
	ID int `json:"id"`

	// Public is the record's stored visibility flag. Derived visibility
	// of individual associations lives on relation.Ref, never here.
	Public bool `json:"public"`
}

// EntityID implements relation.Entity.
func (e *Entity) EntityID() int { return e.ID }

// IsPublic implements relation.Entity.
func (e *Entity) IsPublic() bool { return e.Public }

// Named is implemented by records that carry a human-readable display
// name, used for {id, name} short references in projections.
type Named interface {
	DisplayName() string
}

// # Manuscript Status

// Status tracks a manuscript record's editorial workflow state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReviewed, StatusApproved:
		return true
	}
	return false
}
