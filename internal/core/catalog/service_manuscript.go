// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/internal/platform/validate"
)

// # Manuscript Lookups

// ListManuscripts retrieves a paginated and filtered page of manuscript
// rows. The public audience only ever sees public records.
func (service *Service) ListManuscripts(context context.Context, filter ManuscriptFilter, limit, offset int, audience Audience) ([]*Manuscript, int, error) {
	filter.PublicOnly = audience == AudiencePublic
	return service.manuscripts.ListManuscripts(context, filter, limit, offset)
}

/*
GetManuscript returns the display projection of one manuscript.

Description: Serves the cached projection when one exists for the
requested audience; otherwise assembles the manuscript with its
occurrences and merged person associations, projects it, and writes the
projection back to the cache.

Parameters:
  - context: context.Context
  - id: int (Manuscript record id)
  - audience: Audience (Public or internal view)

Returns:
  - ManuscriptView: The projected manuscript
  - error: dberr.ErrNotFound or assembly failures
*/
func (service *Service) GetManuscript(context context.Context, id int, audience Audience) (ManuscriptView, error) {
	var view ManuscriptView
	if service.cache.GetView(context, KindManuscriptRecord, id, audience, &view) {
		return view, nil
	}

	m, err := service.assembleManuscript(context, id)
	if err != nil {
		return ManuscriptView{}, err
	}
	if audience == AudiencePublic && !m.Public {
		return ManuscriptView{}, dberr.ErrNotFound
	}

	view = NewManuscriptView(m, audience)
	service.storeView(context, KindManuscriptRecord, id, audience, view)
	return view, nil
}

// GetManuscriptPersons returns only the merged person role groups of one
// manuscript, for the dedicated cross-listing endpoint.
func (service *Service) GetManuscriptPersons(context context.Context, id int, audience Audience) ([]RoleGroupView, error) {
	m, err := service.assembleManuscript(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !m.Public {
		return nil, dberr.ErrNotFound
	}

	groups := m.AllPersonRoles()
	if audience == AudiencePublic {
		groups = m.PublicPersonRoles()
	}
	return newRoleGroupViews(groups, audience), nil
}

// GetManuscriptOccurrences lists the occurrences copied onto one
// manuscript, in catalogue order, as short references.
func (service *Service) GetManuscriptOccurrences(context context.Context, id int, audience Audience) ([]ShortRef, error) {
	m, err := service.manuscripts.GetManuscript(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !m.Public {
		return nil, dberr.ErrNotFound
	}

	occurrences, err := service.manuscripts.ListOccurrences(context, id)
	if err != nil {
		return nil, err
	}

	refs := make([]ShortRef, 0, len(occurrences))
	for _, occurrence := range occurrences {
		if audience == AudiencePublic && !occurrence.Public {
			continue
		}
		refs = append(refs, NewShortRef(occurrence))
	}
	return refs, nil
}

// # Manuscript Management

func (service *Service) CreateManuscript(context context.Context, m *Manuscript) error {
	if m.Status == "" {
		m.Status = StatusDraft
	}
	if err := service.validateManuscript(m); err != nil {
		return err
	}

	if err := service.manuscripts.CreateManuscript(context, m); err != nil {
		return err
	}

	service.invalidate(context, KindManuscriptRecord, m.ID)
	service.logger.Info("manuscript_created",
		slog.Int("manuscript_id", m.ID),
		slog.String("name", m.DisplayName()),
	)
	return nil
}

func (service *Service) UpdateManuscript(context context.Context, id int, m *Manuscript) error {
	m.ID = id
	if m.Status == "" {
		m.Status = StatusDraft
	}
	if err := service.validateManuscript(m); err != nil {
		return err
	}

	if err := service.manuscripts.UpdateManuscript(context, m); err != nil {
		return err
	}

	service.invalidate(context, KindManuscriptRecord, id)
	service.logger.Info("manuscript_updated", slog.Int("manuscript_id", id))
	return nil
}

func (service *Service) DeleteManuscript(context context.Context, id int) error {
	if err := service.manuscripts.DeleteManuscript(context, id); err != nil {
		return err
	}

	service.invalidate(context, KindManuscriptRecord, id)
	service.logger.Warn("manuscript_deleted", slog.Int("manuscript_id", id))
	return nil
}

// SetManuscriptPersonRoles rewrites the directly authored person role
// bindings of a manuscript. Unknown role system names fail the whole
// replacement.
func (service *Service) SetManuscriptPersonRoles(context context.Context, id int, bindings []RoleBinding) error {
	if err := service.validateBindings(context, bindings, role.UsageManuscript); err != nil {
		return err
	}

	if err := service.manuscripts.ReplacePersonRoles(context, id, bindings); err != nil {
		return err
	}

	service.invalidate(context, KindManuscriptRecord, id)
	service.logger.Info("manuscript_roles_replaced",
		slog.Int("manuscript_id", id),
		slog.Int("bindings", len(bindings)),
	)
	return nil
}

// SetManuscriptContents rewrites the content classification links of a
// manuscript.
func (service *Service) SetManuscriptContents(context context.Context, id int, contentIDs []int) error {
	if err := service.manuscripts.ReplaceContents(context, id, contentIDs); err != nil {
		return err
	}

	service.invalidate(context, KindManuscriptRecord, id)
	service.logger.Info("manuscript_contents_replaced",
		slog.Int("manuscript_id", id),
		slog.Int("contents", len(contentIDs)),
	)
	return nil
}

// validateManuscript enforces the identifying triple and a recognised
// workflow status.
func (service *Service) validateManuscript(m *Manuscript) error {
	validator := &validate.Validator{}

	validator.Required(FieldCity, m.City).MaxLen(FieldCity, m.City, 200)
	validator.Required(FieldLibrary, m.Library).MaxLen(FieldLibrary, m.Library, 200)
	validator.Required(FieldShelf, m.Shelf).MaxLen(FieldShelf, m.Shelf, 200)

	validator.OneOf(FieldStatus, string(m.Status),
		string(StatusDraft),
		string(StatusReviewed),
		string(StatusApproved),
	)

	return validator.Err()
}
