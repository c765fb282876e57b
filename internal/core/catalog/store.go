// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
)

// Storage contracts for the catalogue.
//
// Repositories return flat rows and loose edges; assembling them into
// entities with populated association graphs is the service's job, so
// the visibility rules live in exactly one place.

// # Filters

// PersonFilter holds the parameters for a paginated person search.
type PersonFilter struct {
	Query      string // Matches first and last name
	Historical *bool
	Modern     *bool
	Editorial  *bool
	PublicOnly bool
}

// ManuscriptFilter holds the parameters for a paginated manuscript search.
type ManuscriptFilter struct {
	Query      string // Matches city, library and shelf mark
	City       string
	Status     Status
	PublicOnly bool
}

// OccurrenceFilter holds the parameters for a paginated occurrence search.
type OccurrenceFilter struct {
	Query        string // Matches the incipit
	ManuscriptID *int
	PublicOnly   bool
}

// DocumentFilter holds the parameters for a paginated bibliography search.
type DocumentFilter struct {
	Query      string // Matches the title
	Kind       DocumentKind
	PublicOnly bool
}

// # Edges

// PersonEdge is one loaded person association on a manuscript or an
// occurrence. Occurrence is nil for directly authored roles and set to
// the contributing witness for inherited ones.
type PersonEdge struct {
	RoleSystemName string
	Person         *Person
	Occurrence     *Occurrence
}

// ManuscriptEdge is one loaded manuscript association on a person,
// mirrored from [PersonEdge].
type ManuscriptEdge struct {
	RoleSystemName string
	Manuscript     *Manuscript
	Occurrence     *Occurrence
}

// DocumentEdge is one loaded bibliographic association on a person.
// The axis the edge lands on (people or contributors) is derived from
// the role's own contributor flag at assembly time.
type DocumentEdge struct {
	RoleSystemName string
	Document       Bibliographic
}

// RoleBinding is the write-side form of an association: ids only, the
// role referenced by its stable system name.
type RoleBinding struct {
	RoleSystemName string `json:"role"`
	PersonID       int    `json:"person_id"`
}

// # Repositories

type PersonRepository interface {
	ListPersons(context context.Context, f PersonFilter, limit, offset int) ([]*Person, int, error)
	GetPerson(context context.Context, id int) (*Person, error)
	CreatePerson(context context.Context, p *Person) error
	UpdatePerson(context context.Context, p *Person) error
	DeletePerson(context context.Context, id int) error

	// ListManuscriptEdges loads the person's manuscript associations,
	// direct and occurrence-inherited, as loose edges.
	ListManuscriptEdges(context context.Context, personID int) ([]ManuscriptEdge, error)

	// ListDocumentEdges loads the person's bibliographic associations.
	ListDocumentEdges(context context.Context, personID int) ([]DocumentEdge, error)
}

type ManuscriptRepository interface {
	ListManuscripts(context context.Context, f ManuscriptFilter, limit, offset int) ([]*Manuscript, int, error)
	GetManuscript(context context.Context, id int) (*Manuscript, error)
	CreateManuscript(context context.Context, m *Manuscript) error
	UpdateManuscript(context context.Context, m *Manuscript) error
	DeleteManuscript(context context.Context, id int) error

	// ListOccurrences loads the manuscript's occurrences in catalogue order.
	ListOccurrences(context context.Context, manuscriptID int) ([]*Occurrence, error)

	// ListPersonEdges loads direct and occurrence-inherited person
	// associations as loose edges.
	ListPersonEdges(context context.Context, manuscriptID int) ([]PersonEdge, error)

	// ReplacePersonRoles rewrites the direct person role bindings.
	ReplacePersonRoles(context context.Context, manuscriptID int, bindings []RoleBinding) error

	// ReplaceContents rewrites the content classification links.
	ReplaceContents(context context.Context, manuscriptID int, contentIDs []int) error
}

type OccurrenceRepository interface {
	ListOccurrences(context context.Context, f OccurrenceFilter, limit, offset int) ([]*Occurrence, int, error)
	GetOccurrence(context context.Context, id int) (*Occurrence, error)
	CreateOccurrence(context context.Context, o *Occurrence) error
	UpdateOccurrence(context context.Context, o *Occurrence) error
	DeleteOccurrence(context context.Context, id int) error

	// ListPersonEdges loads the occurrence's direct person associations.
	ListPersonEdges(context context.Context, occurrenceID int) ([]PersonEdge, error)

	// ReplacePersonRoles rewrites the direct person role bindings.
	ReplacePersonRoles(context context.Context, occurrenceID int, bindings []RoleBinding) error

	// ReplaceContents rewrites the content type links.
	ReplaceContents(context context.Context, occurrenceID int, contentIDs []int) error

	// ListRelated loads the related occurrence links with their verse
	// overlaps.
	ListRelated(context context.Context, occurrenceID int) ([]RelatedOccurrence, error)

	// ReplaceRelated rewrites the related occurrence links.
	ReplaceRelated(context context.Context, occurrenceID int, related []RelatedOccurrence) error
}

type DocumentRepository interface {
	ListDocuments(context context.Context, f DocumentFilter, limit, offset int) ([]Bibliographic, int, error)
	GetDocument(context context.Context, id int) (Bibliographic, error)
	CreateDocument(context context.Context, b Bibliographic) error
	UpdateDocument(context context.Context, b Bibliographic) error
	DeleteDocument(context context.Context, id int) error

	// ListPersonEdges loads the document's person and contributor
	// associations.
	ListPersonEdges(context context.Context, documentID int) ([]PersonEdge, error)

	// ReplacePersonRoles rewrites the person role bindings; contributor
	// roles are told apart by their role metadata during assembly.
	ReplacePersonRoles(context context.Context, documentID int, bindings []RoleBinding) error
}

type ContentRepository interface {
	ListContents(context context.Context) ([]*Content, error)
	CreateContent(context context.Context, c *Content) error
	UpdateContent(context context.Context, c *Content) error
	DeleteContent(context context.Context, id int) error
}
