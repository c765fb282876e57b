// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/internal/platform/validate"
)

// # Person Lookups

// ListPersons retrieves a paginated and filtered page of person rows.
// The public audience only ever sees public records.
func (service *Service) ListPersons(context context.Context, filter PersonFilter, limit, offset int, audience Audience) ([]*Person, int, error) {
	filter.PublicOnly = audience == AudiencePublic
	return service.persons.ListPersons(context, filter, limit, offset)
}

/*
GetPerson returns the display projection of one person.

Description: Serves the cached projection when one exists for the
requested audience; otherwise assembles the full record, projects it,
and writes the projection back to the cache. A private person is not
found for the public audience, it does not exist there.

Parameters:
  - context: context.Context
  - id: int (Person record id)
  - audience: Audience (Public or internal view)

Returns:
  - PersonView: The projected person
  - error: dberr.ErrNotFound or assembly failures
*/
func (service *Service) GetPerson(context context.Context, id int, audience Audience) (PersonView, error) {
	var view PersonView
	if service.cache.GetView(context, KindPersonRecord, id, audience, &view) {
		return view, nil
	}

	p, err := service.assemblePerson(context, id)
	if err != nil {
		return PersonView{}, err
	}
	if audience == AudiencePublic && !p.Public {
		return PersonView{}, dberr.ErrNotFound
	}

	view = NewPersonView(p, audience)
	service.storeView(context, KindPersonRecord, id, audience, view)
	return view, nil
}

// GetPersonManuscripts returns only the merged manuscript role groups of
// one person, for the dedicated cross-listing endpoint.
func (service *Service) GetPersonManuscripts(context context.Context, id int, audience Audience) ([]RoleGroupView, error) {
	p, err := service.assemblePerson(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !p.Public {
		return nil, dberr.ErrNotFound
	}

	groups := p.AllManuscriptRoles()
	if audience == AudiencePublic {
		groups = p.PublicManuscriptRoles()
	}
	return newRoleGroupViews(groups, audience), nil
}

// GetPersonDocuments returns the person's bibliographic role groups
// keyed by document kind.
func (service *Service) GetPersonDocuments(context context.Context, id int, audience Audience) (map[string][]RoleGroupView, error) {
	p, err := service.assemblePerson(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !p.Public {
		return nil, dberr.ErrNotFound
	}

	views := make(map[string][]RoleGroupView)
	for kind, graph := range p.Documents {
		groups := graph.All()
		if audience == AudiencePublic {
			groups = graph.Public()
		}
		groups = relation.ReduceRelated(groups)
		if len(groups) == 0 {
			continue
		}
		views[string(kind)] = newRoleGroupViews(groups, audience)
	}
	return views, nil
}

// # Person Management

func (service *Service) CreatePerson(context context.Context, p *Person) error {
	if err := service.validatePerson(p); err != nil {
		return err
	}

	if err := service.persons.CreatePerson(context, p); err != nil {
		return err
	}

	service.invalidate(context, KindPersonRecord, p.ID)
	service.logger.Info("person_created",
		slog.Int("person_id", p.ID),
		slog.String("name", p.DisplayName()),
	)
	return nil
}

func (service *Service) UpdatePerson(context context.Context, id int, p *Person) error {
	p.ID = id
	if err := service.validatePerson(p); err != nil {
		return err
	}

	if err := service.persons.UpdatePerson(context, p); err != nil {
		return err
	}

	service.invalidate(context, KindPersonRecord, id)
	service.logger.Info("person_updated", slog.Int("person_id", id))
	return nil
}

func (service *Service) DeletePerson(context context.Context, id int) error {
	if err := service.persons.DeletePerson(context, id); err != nil {
		return err
	}

	service.invalidate(context, KindPersonRecord, id)
	service.logger.Warn("person_deleted", slog.Int("person_id", id))
	return nil
}

// validatePerson enforces the person invariants: at least one category
// flag, and every attestation dated on exactly one side.
func (service *Service) validatePerson(p *Person) error {
	validator := &validate.Validator{}

	validator.MaxLen(FieldFirstName, p.FirstName, 200)
	validator.MaxLen(FieldLastName, p.LastName, 200)

	validator.Custom(FieldHistorical,
		!p.Historical && !p.Modern && !p.Editorial,
		"at least one of historical, modern or editorial must be set")

	for _, attestation := range p.Attestations {
		hasDate := attestation.Date != nil && !attestation.Date.IsEmpty()
		hasInterval := attestation.Interval != nil && !attestation.Interval.IsEmpty()
		validator.Custom("attestations", hasDate == hasInterval,
			"an attestation carries either a date or an interval")
	}

	return validator.Err()
}
