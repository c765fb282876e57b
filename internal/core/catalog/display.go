// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"github.com/wdebaets/codex/internal/core/relation"
)

// Display projections: the JSON shapes handed to the presentation layer.
// Every related entity appears as an {id, name} short reference; which
// associations are included depends on the audience.

// # Audience

// Audience selects which merged view feeds a projection.
type Audience int

const (
	// AudiencePublic sees only effectively visible associations and
	// public records.
	AudiencePublic Audience = iota

	// AudienceInternal sees the full merged view, with the effective
	// visibility flag and provenance exposed per association.
	AudienceInternal
)

// # Short References

// ShortRef is the {id, name} form every related entity takes inside a
// projection.
type ShortRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewShortRef builds a short reference; entities without a display name
// fall back to an empty name rather than failing.
func NewShortRef(e relation.Entity) ShortRef {
	ref := ShortRef{ID: e.EntityID()}
	if named, ok := e.(Named); ok {
		ref.Name = named.DisplayName()
	}
	return ref
}

// # Role Groups

// TargetView is one association inside a projected role group.
type TargetView struct {
	ShortRef

	// Visible carries the association's effective visibility; only
	// populated for the internal audience.
	Visible *bool `json:"visible,omitempty"`

	// Via lists the contributing intermediate records; only populated
	// for the internal audience.
	Via []ShortRef `json:"via,omitempty"`
}

// RoleGroupView is one role's merged target list.
type RoleGroupView struct {
	Role    string       `json:"role"`
	Name    string       `json:"name"`
	Targets []TargetView `json:"targets"`
}

// newRoleGroupViews projects merged groups for the given audience.
func newRoleGroupViews(groups []relation.Group, audience Audience) []RoleGroupView {
	views := make([]RoleGroupView, 0, len(groups))
	for _, group := range groups {
		view := RoleGroupView{
			Role:    group.Role.SystemName,
			Name:    group.Role.Name,
			Targets: make([]TargetView, 0, len(group.Refs)),
		}
		for _, ref := range group.Refs {
			target := TargetView{ShortRef: NewShortRef(ref.Entity)}
			if audience == AudienceInternal {
				visible := ref.Visible
				target.Visible = &visible
				for _, via := range ref.Via {
					target.Via = append(target.Via, NewShortRef(via))
				}
			}
			view.Targets = append(view.Targets, target)
		}
		views = append(views, view)
	}
	return views
}

// # Person Projections

// PersonView is the display projection of a [Person].
type PersonView struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Lifespan     string   `json:"lifespan,omitempty"`
	Attestations []string `json:"attestations,omitempty"`
	Historical   bool     `json:"historical"`
	Modern       bool     `json:"modern"`
	Editorial    bool     `json:"editorial"`

	ManuscriptRoles []RoleGroupView            `json:"manuscript_roles,omitempty"`
	DocumentRoles   map[string][]RoleGroupView `json:"document_roles,omitempty"`
}

// NewPersonView projects a person for the given audience.
func NewPersonView(p *Person, audience Audience) PersonView {
	view := PersonView{
		ID:         p.ID,
		Name:       p.DisplayName(),
		Lifespan:   p.Lifespan(),
		Historical: p.Historical,
		Modern:     p.Modern,
		Editorial:  p.Editorial,
	}

	for _, attestation := range p.Attestations {
		if rendered := attestation.String(); rendered != "" {
			view.Attestations = append(view.Attestations, rendered)
		}
	}

	if audience == AudienceInternal {
		view.ManuscriptRoles = newRoleGroupViews(p.AllManuscriptRoles(), audience)
	} else {
		view.ManuscriptRoles = newRoleGroupViews(p.PublicManuscriptRoles(), audience)
	}

	for kind, graph := range p.Documents {
		groups := graph.All()
		if audience == AudiencePublic {
			groups = graph.Public()
		}
		groups = relation.ReduceRelated(groups)
		if len(groups) == 0 {
			continue
		}
		if view.DocumentRoles == nil {
			view.DocumentRoles = make(map[string][]RoleGroupView)
		}
		view.DocumentRoles[string(kind)] = newRoleGroupViews(groups, audience)
	}

	return view
}

// # Manuscript Projections

// ManuscriptView is the display projection of a [Manuscript].
type ManuscriptView struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Date     string   `json:"date,omitempty"`
	Status   Status   `json:"status"`
	Contents []string `json:"contents,omitempty"`

	PersonRoles []RoleGroupView `json:"person_roles,omitempty"`
	Occurrences []ShortRef      `json:"occurrences,omitempty"`
}

// NewManuscriptView projects a manuscript for the given audience.
func NewManuscriptView(m *Manuscript, audience Audience) ManuscriptView {
	view := ManuscriptView{
		ID:     m.ID,
		Name:   m.DisplayName(),
		Date:   m.Date.String(),
		Status: m.Status,
	}

	for _, content := range m.SortedContents() {
		view.Contents = append(view.Contents, content.DisplayName())
	}

	if audience == AudienceInternal {
		view.PersonRoles = newRoleGroupViews(m.AllPersonRoles(), audience)
	} else {
		view.PersonRoles = newRoleGroupViews(m.PublicPersonRoles(), audience)
	}

	for _, occurrence := range m.Occurrences {
		if audience == AudiencePublic && !occurrence.Public {
			continue
		}
		view.Occurrences = append(view.Occurrences, NewShortRef(occurrence))
	}

	return view
}

// # Occurrence Projections

// RelatedOccurrenceView pairs a related occurrence reference with its
// verse overlap.
type RelatedOccurrenceView struct {
	ShortRef
	SharedVerses int `json:"shared_verses"`
}

// OccurrenceView is the display projection of an [Occurrence].
type OccurrenceView struct {
	ID             int       `json:"id"`
	Incipit        string    `json:"incipit"`
	Location       string    `json:"location,omitempty"`
	NumberOfVerses int       `json:"number_of_verses"`
	Date           string    `json:"date,omitempty"`
	Manuscript     *ShortRef `json:"manuscript,omitempty"`
	Types          []string  `json:"types,omitempty"`

	PersonRoles []RoleGroupView         `json:"person_roles,omitempty"`
	Related     []RelatedOccurrenceView `json:"related,omitempty"`
}

// NewOccurrenceView projects an occurrence for the given audience.
func NewOccurrenceView(o *Occurrence, audience Audience) OccurrenceView {
	view := OccurrenceView{
		ID:             o.ID,
		Incipit:        o.Incipit,
		Location:       o.Location(),
		NumberOfVerses: o.NumberOfVerses(),
		Date:           o.Date.String(),
	}

	if o.Manuscript != nil && (audience == AudienceInternal || o.Manuscript.Public) {
		ref := NewShortRef(o.Manuscript)
		view.Manuscript = &ref
	}

	for _, contentType := range o.SortedTypes() {
		view.Types = append(view.Types, contentType.DisplayName())
	}

	groups := o.People.All()
	if audience == AudiencePublic {
		groups = o.People.Public()
	}
	view.PersonRoles = newRoleGroupViews(relation.ReduceRelated(groups), audience)

	for _, related := range o.Related {
		if audience == AudiencePublic && !related.Occurrence.Public {
			continue
		}
		view.Related = append(view.Related, RelatedOccurrenceView{
			ShortRef:     NewShortRef(related.Occurrence),
			SharedVerses: related.SharedVerses,
		})
	}

	return view
}

// # Document Projections

// DocumentView is the display projection of a bibliographic record.
type DocumentView struct {
	ID       int        `json:"id"`
	Kind     string     `json:"kind"`
	Title    string     `json:"title"`
	Citation string     `json:"citation"`
	SortKey  string     `json:"sort_key"`
	Authors  []ShortRef `json:"authors,omitempty"`
}

// NewDocumentView projects a bibliographic record. Citation and sort key
// are audience-independent; only the author list respects visibility.
func NewDocumentView(b Bibliographic, audience Audience) DocumentView {
	view := DocumentView{
		ID:       b.EntityID(),
		Kind:     string(b.Kind()),
		Title:    b.DisplayName(),
		Citation: b.Citation(),
		SortKey:  b.SortKey(),
	}

	if doc := documentBase(b); doc != nil {
		for _, author := range doc.Authors() {
			if audience == AudiencePublic && !author.Public {
				continue
			}
			view.Authors = append(view.Authors, NewShortRef(author))
		}
	}

	return view
}

// documentBase extracts the embedded [Document] of a subtype.
func documentBase(b Bibliographic) *Document {
	switch concrete := b.(type) {
	case *Book:
		return &concrete.Document
	case *Article:
		return &concrete.Document
	case *BookChapter:
		return &concrete.Document
	case *PhdThesis:
		return &concrete.Document
	case *OnlineSource:
		return &concrete.Document
	}
	return nil
}
