// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/internal/platform/validate"
)

// # Service Layer

// Cache record kinds, shared between view caching and index export.
const (
	KindPersonRecord     = "person"
	KindManuscriptRecord = "manuscript"
	KindOccurrenceRecord = "occurrence"
	KindDocumentRecord   = "document"
)

// RoleSource supplies the strict role catalogue used during record
// assembly. It is satisfied by [role.Service].
type RoleSource interface {
	LoadCatalog(context context.Context) (*role.Catalog, error)
}

/*
Service orchestrates the business logic for the catalogue records.

It assembles full entities out of the flat rows and loose edges the
repositories return, resolving every role reference through the strict
role catalogue, and projects them per audience. Views are cached per
record and audience; every write invalidates the touched records.
*/
type Service struct {
	persons     PersonRepository
	manuscripts ManuscriptRepository
	occurrences OccurrenceRepository
	documents   DocumentRepository
	contents    ContentRepository

	roles  RoleSource
	cache  *ViewCache
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
// The cache may be nil, in which case every read assembles from storage.
func NewService(
	persons PersonRepository,
	manuscripts ManuscriptRepository,
	occurrences OccurrenceRepository,
	documents DocumentRepository,
	contents ContentRepository,
	roles RoleSource,
	cache *ViewCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		persons:     persons,
		manuscripts: manuscripts,
		occurrences: occurrences,
		documents:   documents,
		contents:    contents,
		roles:       roles,
		cache:       cache,
		logger:      logger,
	}
}

// # Record Assembly

/*
assemblePerson loads one person with its full association graphs.

Every edge is resolved against the strict role catalogue; an edge whose
role system name is unknown fails the whole assembly rather than being
skipped, so a broken binding is caught instead of silently hidden.
*/
func (service *Service) assemblePerson(context context.Context, id int) (*Person, error) {
	p, err := service.persons.GetPerson(context, id)
	if err != nil {
		return nil, err
	}

	catalog, err := service.roles.LoadCatalog(context)
	if err != nil {
		return nil, err
	}

	manuscriptEdges, err := service.persons.ListManuscriptEdges(context, id)
	if err != nil {
		return nil, err
	}
	for _, edge := range manuscriptEdges {
		r, err := catalog.Get(edge.RoleSystemName)
		if err != nil {
			return nil, err
		}
		if edge.Occurrence == nil {
			p.AddManuscriptRole(r, edge.Manuscript)
			continue
		}
		p.AddOccurrenceManuscriptRole(r, edge.Manuscript, edge.Occurrence)
	}

	documentEdges, err := service.persons.ListDocumentEdges(context, id)
	if err != nil {
		return nil, err
	}
	for _, edge := range documentEdges {
		r, err := catalog.Get(edge.RoleSystemName)
		if err != nil {
			return nil, err
		}
		p.AddDocumentRole(edge.Document.Kind(), r, edge.Document)
	}

	return p, nil
}

// assembleManuscript loads one manuscript with its occurrences and its
// merged person associations, direct and occurrence-inherited.
func (service *Service) assembleManuscript(context context.Context, id int) (*Manuscript, error) {
	m, err := service.manuscripts.GetManuscript(context, id)
	if err != nil {
		return nil, err
	}

	catalog, err := service.roles.LoadCatalog(context)
	if err != nil {
		return nil, err
	}

	occurrences, err := service.manuscripts.ListOccurrences(context, id)
	if err != nil {
		return nil, err
	}
	for _, occurrence := range occurrences {
		m.AddOccurrence(occurrence)
	}

	personEdges, err := service.manuscripts.ListPersonEdges(context, id)
	if err != nil {
		return nil, err
	}
	for _, edge := range personEdges {
		r, err := catalog.Get(edge.RoleSystemName)
		if err != nil {
			return nil, err
		}
		if edge.Occurrence == nil {
			m.AddPersonRole(r, edge.Person)
			continue
		}
		m.AddOccurrencePersonRole(r, edge.Person, edge.Occurrence)
	}

	return m, nil
}

// assembleOccurrence loads one occurrence with its carrying manuscript,
// person associations and related links.
func (service *Service) assembleOccurrence(context context.Context, id int) (*Occurrence, error) {
	o, err := service.occurrences.GetOccurrence(context, id)
	if err != nil {
		return nil, err
	}

	catalog, err := service.roles.LoadCatalog(context)
	if err != nil {
		return nil, err
	}

	personEdges, err := service.occurrences.ListPersonEdges(context, id)
	if err != nil {
		return nil, err
	}
	for _, edge := range personEdges {
		r, err := catalog.Get(edge.RoleSystemName)
		if err != nil {
			return nil, err
		}
		o.AddPersonRole(r, edge.Person)
	}

	related, err := service.occurrences.ListRelated(context, id)
	if err != nil {
		return nil, err
	}
	for _, link := range related {
		o.AddRelated(link.Occurrence, link.SharedVerses)
	}

	return o, nil
}

// assembleDocument loads one bibliographic record with its person and
// contributor associations. The role's own contributor flag decides
// which of the two axes an edge lands on.
func (service *Service) assembleDocument(context context.Context, id int) (Bibliographic, error) {
	b, err := service.documents.GetDocument(context, id)
	if err != nil {
		return nil, err
	}

	catalog, err := service.roles.LoadCatalog(context)
	if err != nil {
		return nil, err
	}

	personEdges, err := service.documents.ListPersonEdges(context, id)
	if err != nil {
		return nil, err
	}

	doc := documentBase(b)
	for _, edge := range personEdges {
		r, err := catalog.Get(edge.RoleSystemName)
		if err != nil {
			return nil, err
		}
		if r.ContributorRole {
			doc.AddContributorRole(r, edge.Person)
			continue
		}
		doc.AddPersonRole(r, edge.Person)
	}

	return b, nil
}

// validateBindings resolves every binding's role against the strict
// catalogue and checks it is declared for the entity kind being written.
func (service *Service) validateBindings(context context.Context, bindings []RoleBinding, usage role.Usage) error {
	catalog, err := service.roles.LoadCatalog(context)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	for _, binding := range bindings {
		r, err := catalog.Get(binding.RoleSystemName)
		if err != nil {
			validator.Custom("role", true, err.Error())
			continue
		}
		validator.Custom("role", !r.AppliesTo(usage),
			binding.RoleSystemName+" does not apply to this record kind")
	}
	return validator.Err()
}

// # Cache Plumbing

// storeView writes a projection to the view cache. Cache failures are
// logged and swallowed; the caller already holds the fresh view.
func (service *Service) storeView(context context.Context, kind string, id int, audience Audience, view any) {
	if err := service.cache.SetView(context, kind, id, audience, view); err != nil {
		service.logger.Warn("view_cache_write_failed",
			slog.String("kind", kind),
			slog.Int("record_id", id),
			slog.Any("error", err),
		)
	}
}

// invalidate drops the cached views and the index export of one record.
func (service *Service) invalidate(context context.Context, kind string, id int) {
	if err := service.cache.InvalidateRecord(context, kind, id); err != nil {
		service.logger.Warn("view_cache_invalidate_failed",
			slog.String("kind", kind),
			slog.Int("record_id", id),
			slog.Any("error", err),
		)
	}
}
