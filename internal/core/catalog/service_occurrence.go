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

// RelatedInput is the write-side form of a related occurrence link.
type RelatedInput struct {
	OccurrenceID int `json:"occurrence_id"`
	SharedVerses int `json:"shared_verses"`
}

// # Occurrence Lookups

// ListOccurrences retrieves a paginated and filtered page of occurrence
// rows. The public audience only ever sees public records.
func (service *Service) ListOccurrences(context context.Context, filter OccurrenceFilter, limit, offset int, audience Audience) ([]*Occurrence, int, error) {
	filter.PublicOnly = audience == AudiencePublic
	return service.occurrences.ListOccurrences(context, filter, limit, offset)
}

/*
GetOccurrence returns the display projection of one occurrence.

Description: Serves the cached projection when one exists for the
requested audience; otherwise assembles the occurrence with its carrying
manuscript, person associations and related links, projects it, and
writes the projection back to the cache.

Parameters:
  - context: context.Context
  - id: int (Occurrence record id)
  - audience: Audience (Public or internal view)

Returns:
  - OccurrenceView: The projected occurrence
  - error: dberr.ErrNotFound or assembly failures
*/
func (service *Service) GetOccurrence(context context.Context, id int, audience Audience) (OccurrenceView, error) {
	var view OccurrenceView
	if service.cache.GetView(context, KindOccurrenceRecord, id, audience, &view) {
		return view, nil
	}

	o, err := service.assembleOccurrence(context, id)
	if err != nil {
		return OccurrenceView{}, err
	}
	if audience == AudiencePublic && !o.Public {
		return OccurrenceView{}, dberr.ErrNotFound
	}

	view = NewOccurrenceView(o, audience)
	service.storeView(context, KindOccurrenceRecord, id, audience, view)
	return view, nil
}

// GetOccurrenceRelated lists the related occurrence links of one
// occurrence with their verse overlaps.
func (service *Service) GetOccurrenceRelated(context context.Context, id int, audience Audience) ([]RelatedOccurrenceView, error) {
	o, err := service.occurrences.GetOccurrence(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !o.Public {
		return nil, dberr.ErrNotFound
	}

	related, err := service.occurrences.ListRelated(context, id)
	if err != nil {
		return nil, err
	}

	views := make([]RelatedOccurrenceView, 0, len(related))
	for _, link := range related {
		if audience == AudiencePublic && !link.Occurrence.Public {
			continue
		}
		views = append(views, RelatedOccurrenceView{
			ShortRef:     NewShortRef(link.Occurrence),
			SharedVerses: link.SharedVerses,
		})
	}
	return views, nil
}

// # Occurrence Management

func (service *Service) CreateOccurrence(context context.Context, o *Occurrence) error {
	if err := service.validateOccurrence(o); err != nil {
		return err
	}

	if err := service.occurrences.CreateOccurrence(context, o); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, o.ID)
	if o.Manuscript != nil {
		service.invalidate(context, KindManuscriptRecord, o.Manuscript.ID)
	}
	service.logger.Info("occurrence_created",
		slog.Int("occurrence_id", o.ID),
		slog.String("incipit", o.Incipit),
	)
	return nil
}

func (service *Service) UpdateOccurrence(context context.Context, id int, o *Occurrence) error {
	o.ID = id
	if err := service.validateOccurrence(o); err != nil {
		return err
	}

	if err := service.occurrences.UpdateOccurrence(context, o); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, id)
	if o.Manuscript != nil {
		service.invalidate(context, KindManuscriptRecord, o.Manuscript.ID)
	}
	service.logger.Info("occurrence_updated", slog.Int("occurrence_id", id))
	return nil
}

func (service *Service) DeleteOccurrence(context context.Context, id int) error {
	if err := service.occurrences.DeleteOccurrence(context, id); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, id)
	service.logger.Warn("occurrence_deleted", slog.Int("occurrence_id", id))
	return nil
}

// SetOccurrencePersonRoles rewrites the person role bindings of an
// occurrence. Unknown role system names fail the whole replacement.
func (service *Service) SetOccurrencePersonRoles(context context.Context, id int, bindings []RoleBinding) error {
	if err := service.validateBindings(context, bindings, role.UsageOccurrence); err != nil {
		return err
	}

	if err := service.occurrences.ReplacePersonRoles(context, id, bindings); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, id)
	service.logger.Info("occurrence_roles_replaced",
		slog.Int("occurrence_id", id),
		slog.Int("bindings", len(bindings)),
	)
	return nil
}

// SetOccurrenceContents rewrites the content type links of an occurrence.
func (service *Service) SetOccurrenceContents(context context.Context, id int, contentIDs []int) error {
	if err := service.occurrences.ReplaceContents(context, id, contentIDs); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, id)
	service.logger.Info("occurrence_contents_replaced",
		slog.Int("occurrence_id", id),
		slog.Int("contents", len(contentIDs)),
	)
	return nil
}

// SetOccurrenceRelated rewrites the related occurrence links. The store
// keeps the links mutual, so both sides of every pair are invalidated.
func (service *Service) SetOccurrenceRelated(context context.Context, id int, links []RelatedInput) error {
	validator := &validate.Validator{}
	for _, link := range links {
		validator.Custom("related", link.OccurrenceID == id,
			"an occurrence cannot relate to itself")
		validator.Custom("shared_verses", link.SharedVerses < 0,
			"shared verse count cannot be negative")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	// Collect the links being dropped so their caches clear too.
	previous, err := service.occurrences.ListRelated(context, id)
	if err != nil {
		return err
	}

	related := make([]RelatedOccurrence, 0, len(links))
	for _, link := range links {
		related = append(related, RelatedOccurrence{
			Occurrence:   NewOccurrence(link.OccurrenceID, false, ""),
			SharedVerses: link.SharedVerses,
		})
	}

	if err := service.occurrences.ReplaceRelated(context, id, related); err != nil {
		return err
	}

	service.invalidate(context, KindOccurrenceRecord, id)
	for _, link := range previous {
		service.invalidate(context, KindOccurrenceRecord, link.Occurrence.ID)
	}
	for _, link := range links {
		service.invalidate(context, KindOccurrenceRecord, link.OccurrenceID)
	}

	service.logger.Info("occurrence_related_replaced",
		slog.Int("occurrence_id", id),
		slog.Int("links", len(links)),
	)
	return nil
}

// validateOccurrence enforces the incipit and a coherent physical
// location: folium and page notation are mutually exclusive.
func (service *Service) validateOccurrence(o *Occurrence) error {
	validator := &validate.Validator{}

	validator.Required(FieldIncipit, o.Incipit).MaxLen(FieldIncipit, o.Incipit, 500)

	usesFolia := o.FoliumStart != "" || o.FoliumEnd != ""
	usesPages := o.PageStart != "" || o.PageEnd != ""
	validator.Custom(FieldFoliumStart, usesFolia && usesPages,
		"folium and page locations are mutually exclusive")

	validator.Custom(FieldFoliumEnd, o.FoliumEnd != "" && o.FoliumStart == "",
		"folium end requires a folium start")
	validator.Custom(FieldPageEnd, o.PageEnd != "" && o.PageStart == "",
		"page end requires a page start")

	return validator.Err()
}
