// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"strings"

	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/pkg/fold"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

// # Persons

// Person is a historical figure, a modern scholar, or an editorial team
// member appearing anywhere in the catalogue. The category flags are not
// exclusive: a modern scholar can also be an editorial contributor.
type Person struct {
	Entity
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Historical bool `json:"historical"`
	Modern     bool `json:"modern"`
	Editorial  bool `json:"editorial"`

	BornDate  fuzzydate.FuzzyDate `json:"born_date"`
	DeathDate fuzzydate.FuzzyDate `json:"death_date"`

	// Attestations are the dates and spans at which the person is
	// attested in the sources.
	Attestations []Attestation `json:"attestations,omitempty"`

	// Manuscripts folds the person's directly authored manuscript roles
	// together with roles inherited through occurrences copied onto a
	// manuscript; the contributing occurrences are the intermediates.
	Manuscripts *relation.Graph `json:"-"`

	// Documents holds direct bibliographic roles, keyed by document kind.
	Documents map[DocumentKind]*relation.Graph `json:"-"`
}

// Attestation is one dated witness to a person: either a fuzzy date or a
// fuzzy interval, never both.
type Attestation struct {
	Date     *fuzzydate.FuzzyDate `json:"date,omitempty"`
	Interval *fuzzydate.Interval  `json:"interval,omitempty"`
}

// String renders whichever side of the attestation is set.
func (a Attestation) String() string {
	switch {
	case a.Interval != nil:
		return a.Interval.String()
	case a.Date != nil:
		return a.Date.String()
	}
	return ""
}

// NewPerson returns a person with empty association graphs.
func NewPerson(id int, public bool, firstName, lastName string) *Person {
	return &Person{
		Entity:      Entity{ID: id, Public: public},
		FirstName:   firstName,
		LastName:    lastName,
		Manuscripts: relation.NewGraph(),
		Documents:   make(map[DocumentKind]*relation.Graph),
	}
}

// # Assembly

// AddManuscriptRole records a directly authored manuscript association.
func (p *Person) AddManuscriptRole(r role.Role, m *Manuscript) {
	p.Manuscripts.AddDirect(r, m)
}

// AddOccurrenceManuscriptRole records a manuscript association inherited
// through the given contributing occurrences. Repeated calls for the same
// (role, manuscript) accumulate occurrences.
func (p *Person) AddOccurrenceManuscriptRole(r role.Role, m *Manuscript, occurrences ...*Occurrence) {
	via := make([]relation.Entity, len(occurrences))
	for i, occurrence := range occurrences {
		via[i] = occurrence
	}
	p.Manuscripts.AddInherited(r, m, via...)
}

// AddDocumentRole records a direct bibliographic role under the
// document's kind.
func (p *Person) AddDocumentRole(kind DocumentKind, r role.Role, document Bibliographic) {
	graph, ok := p.Documents[kind]
	if !ok {
		graph = relation.NewGraph()
		p.Documents[kind] = graph
	}
	graph.AddDirect(r, document)
}

// # Derived Views

// AllManuscriptRoles is the merged manuscript view: direct and
// occurrence-inherited associations with effective visibility, reduced
// of redundant "related" entries.
func (p *Person) AllManuscriptRoles() []relation.Group {
	return relation.ReduceRelated(p.Manuscripts.All())
}

// PublicManuscriptRoles restricts the merged view to effectively visible
// associations, reduced independently of the all-view.
func (p *Person) PublicManuscriptRoles() []relation.Group {
	return relation.ReduceRelated(p.Manuscripts.Public())
}

// # Presentation

// DisplayName implements [Named]: "First Last" with missing parts
// omitted.
func (p *Person) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Anonymous"
	}
	return name
}

// SortKey orders persons by folded last name, then first name.
func (p *Person) SortKey() string {
	return strings.TrimSpace(fold.String(p.LastName) + " " + fold.String(p.FirstName))
}

// Lifespan renders the born and death dates at month precision, joined
// as an open or closed span.
func (p *Person) Lifespan() string {
	born, death := p.BornDate.Narrow(), p.DeathDate.Narrow()
	switch {
	case born == "" && death == "":
		return ""
	case born == "":
		return "- " + death
	case death == "":
		return born + " -"
	}
	return born + " - " + death
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldHistorical = "historical"
	FieldModern     = "modern"
	FieldEditorial  = "editorial"
	FieldBornDate   = "born_date"
	FieldDeathDate  = "death_date"
)
