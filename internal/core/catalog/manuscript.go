// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"strings"

	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/pkg/fold"
)

// # Manuscripts

// Manuscript is a physical codex identified by its holding city, library
// and shelf mark. Its person associations come in two layers: roles
// authored directly on the manuscript record, and roles inherited from
// the occurrences copied onto it.
type Manuscript struct {
	Document

	City    string `json:"city"`
	Library string `json:"library"`
	Shelf   string `json:"shelf"`

	Status Status `json:"status"`

	// Contents is the classification path list; rendered sorted by each
	// element's own sort key.
	Contents []*Content `json:"-"`

	// Occurrences are the poems copied onto this manuscript, in
	// catalogue order.
	Occurrences []*Occurrence `json:"-"`
}

// NewManuscript returns a manuscript with empty association graphs.
func NewManuscript(id int, public bool, city, library, shelf string) *Manuscript {
	m := &Manuscript{
		Document: NewDocument(id, public, ""),
		City:     city,
		Library:  library,
		Shelf:    shelf,
		Status:   StatusDraft,
	}
	m.Title = m.DisplayName()
	return m
}

// # Assembly

// AddOccurrencePersonRole records a person association inherited from
// one of the manuscript's own occurrences. The occurrence is kept as the
// contributing intermediate for both visibility and provenance.
func (m *Manuscript) AddOccurrencePersonRole(r role.Role, p *Person, occurrences ...*Occurrence) {
	via := make([]relation.Entity, len(occurrences))
	for i, occurrence := range occurrences {
		via[i] = occurrence
	}
	m.People.AddInherited(r, p, via...)
}

// AddOccurrence appends an occurrence to the manuscript's ordered list.
func (m *Manuscript) AddOccurrence(occurrence *Occurrence) {
	m.Occurrences = append(m.Occurrences, occurrence)
}

// # Derived Views

// AllPersonRoles is the merged person view: directly authored roles plus
// roles inherited through occurrences, reduced of redundant "related"
// entries.
func (m *Manuscript) AllPersonRoles() []relation.Group {
	return relation.ReduceRelated(m.People.All())
}

// PublicPersonRoles restricts the merged view to effectively visible
// associations, reduced independently of the all-view.
func (m *Manuscript) PublicPersonRoles() []relation.Group {
	return relation.ReduceRelated(m.People.Public())
}

// SortedContents returns the classification list ordered by each
// element's sort key. The stored order is left untouched.
func (m *Manuscript) SortedContents() []*Content {
	contents := make([]*Content, len(m.Contents))
	copy(contents, m.Contents)
	SortContents(contents)
	return contents
}

// # Presentation

// DisplayName renders the canonical shelf-mark identification:
// "City - Library - Shelf", skipping missing segments.
func (m *Manuscript) DisplayName() string {
	segments := make([]string, 0, 3)
	for _, segment := range []string{m.City, m.Library, m.Shelf} {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, " - ")
}

// SortKey folds the shelf-mark name with natural number ordering, so
// "Vat. gr. 2" precedes "Vat. gr. 10".
func (m *Manuscript) SortKey() string {
	return fold.PadNumbers(fold.String(m.DisplayName()))
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldCity    = "city"
	FieldLibrary = "library"
	FieldShelf   = "shelf"
	FieldStatus  = "status"
)
