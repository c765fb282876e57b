// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/internal/platform/validate"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

// # Document Input

// DocumentInput is the flat write-side form of a bibliographic record.
// The kind discriminator selects which fields are meaningful; the rest
// are ignored.
type DocumentInput struct {
	Kind   DocumentKind `json:"kind"`
	Title  string       `json:"title"`
	Public bool         `json:"public"`

	Year        *int `json:"year,omitempty"`
	Forthcoming bool `json:"forthcoming"`

	City        string `json:"city,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Volume      string `json:"volume,omitempty"`
	Journal     string `json:"journal,omitempty"`
	Number      string `json:"number,omitempty"`
	BookTitle   string `json:"book_title,omitempty"`
	Institution string `json:"institution,omitempty"`

	URL          string `json:"url,omitempty"`
	LastAccessed *int   `json:"last_accessed,omitempty"`

	Pages PageRange `json:"pages"`

	Date             fuzzydate.FuzzyDate `json:"date"`
	Acknowledgements []string            `json:"acknowledgements,omitempty"`
}

// build materialises the concrete subtype for the input's kind.
func (input DocumentInput) build(id int) Bibliographic {
	doc := NewDocument(id, input.Public, input.Title)
	doc.Date = input.Date
	doc.Acknowledgements = input.Acknowledgements

	switch input.Kind {
	case KindArticle:
		return &Article{
			Document: doc, Year: input.Year, Forthcoming: input.Forthcoming,
			Journal: input.Journal, Volume: input.Volume, Number: input.Number,
			Pages: input.Pages,
		}
	case KindBookChapter:
		return &BookChapter{
			Document: doc, Year: input.Year, Forthcoming: input.Forthcoming,
			BookTitle: input.BookTitle, City: input.City, Pages: input.Pages,
		}
	case KindPhdThesis:
		return &PhdThesis{
			Document: doc, Year: input.Year, Forthcoming: input.Forthcoming,
			Institution: input.Institution, City: input.City,
		}
	case KindOnlineSource:
		return &OnlineSource{
			Document: doc, URL: input.URL, LastAccessed: input.LastAccessed,
		}
	}
	return &Book{
		Document: doc, Year: input.Year, Forthcoming: input.Forthcoming,
		City: input.City, Publisher: input.Publisher, Volume: input.Volume,
	}
}

// # Document Lookups

// ListDocuments retrieves a paginated and filtered page of bibliographic
// rows. The public audience only ever sees public records.
func (service *Service) ListDocuments(context context.Context, filter DocumentFilter, limit, offset int, audience Audience) ([]Bibliographic, int, error) {
	filter.PublicOnly = audience == AudiencePublic
	return service.documents.ListDocuments(context, filter, limit, offset)
}

/*
GetDocument returns the display projection of one bibliographic record.

Description: Serves the cached projection when one exists for the
requested audience; otherwise assembles the record with its person and
contributor associations, projects it with its citation and sort key,
and writes the projection back to the cache.

Parameters:
  - context: context.Context
  - id: int (Document record id)
  - audience: Audience (Public or internal view)

Returns:
  - DocumentView: The projected record
  - error: dberr.ErrNotFound or assembly failures
*/
func (service *Service) GetDocument(context context.Context, id int, audience Audience) (DocumentView, error) {
	var view DocumentView
	if service.cache.GetView(context, KindDocumentRecord, id, audience, &view) {
		return view, nil
	}

	b, err := service.assembleDocument(context, id)
	if err != nil {
		return DocumentView{}, err
	}
	if audience == AudiencePublic && !b.IsPublic() {
		return DocumentView{}, dberr.ErrNotFound
	}

	view = NewDocumentView(b, audience)
	service.storeView(context, KindDocumentRecord, id, audience, view)
	return view, nil
}

// GetDocumentPersons returns the merged person role groups of one
// bibliographic record, historical and contributor axes combined.
func (service *Service) GetDocumentPersons(context context.Context, id int, audience Audience) ([]RoleGroupView, error) {
	b, err := service.assembleDocument(context, id)
	if err != nil {
		return nil, err
	}
	if audience == AudiencePublic && !b.IsPublic() {
		return nil, dberr.ErrNotFound
	}

	doc := documentBase(b)

	groups := doc.People.All()
	contributorGroups := doc.Contributors.All()
	if audience == AudiencePublic {
		groups = doc.People.Public()
		contributorGroups = doc.Contributors.Public()
	}
	groups = append(groups, contributorGroups...)

	return newRoleGroupViews(groups, audience), nil
}

// # Document Management

func (service *Service) CreateDocument(context context.Context, input DocumentInput) (Bibliographic, error) {
	if err := service.validateDocument(input); err != nil {
		return nil, err
	}

	b := input.build(0)
	if err := service.documents.CreateDocument(context, b); err != nil {
		return nil, err
	}

	service.invalidate(context, KindDocumentRecord, b.EntityID())
	service.logger.Info("document_created",
		slog.Int("document_id", b.EntityID()),
		slog.String("kind", string(b.Kind())),
		slog.String("title", input.Title),
	)
	return b, nil
}

func (service *Service) UpdateDocument(context context.Context, id int, input DocumentInput) (Bibliographic, error) {
	if err := service.validateDocument(input); err != nil {
		return nil, err
	}

	b := input.build(id)
	if err := service.documents.UpdateDocument(context, b); err != nil {
		return nil, err
	}

	service.invalidate(context, KindDocumentRecord, id)
	service.logger.Info("document_updated", slog.Int("document_id", id))
	return b, nil
}

func (service *Service) DeleteDocument(context context.Context, id int) error {
	if err := service.documents.DeleteDocument(context, id); err != nil {
		return err
	}

	service.invalidate(context, KindDocumentRecord, id)
	service.logger.Warn("document_deleted", slog.Int("document_id", id))
	return nil
}

// SetDocumentPersonRoles rewrites the person role bindings of a
// bibliographic record. Unknown role system names fail the whole
// replacement.
func (service *Service) SetDocumentPersonRoles(context context.Context, id int, bindings []RoleBinding) error {
	if err := service.validateBindings(context, bindings, role.UsageDocument); err != nil {
		return err
	}

	if err := service.documents.ReplacePersonRoles(context, id, bindings); err != nil {
		return err
	}

	service.invalidate(context, KindDocumentRecord, id)
	service.logger.Info("document_roles_replaced",
		slog.Int("document_id", id),
		slog.Int("bindings", len(bindings)),
	)
	return nil
}

// validateDocument enforces the title, a recognised kind, and the
// kind-specific required fields.
func (service *Service) validateDocument(input DocumentInput) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 500)

	validator.Required(FieldKind, string(input.Kind)).OneOf(FieldKind, string(input.Kind),
		string(KindBook),
		string(KindArticle),
		string(KindBookChapter),
		string(KindPhdThesis),
		string(KindOnlineSource),
	)

	switch input.Kind {
	case KindArticle:
		validator.Required(FieldJournal, input.Journal)
	case KindBookChapter:
		validator.Required(FieldBookTitle, input.BookTitle)
	case KindPhdThesis:
		validator.Required(FieldInstitution, input.Institution)
	case KindOnlineSource:
		validator.Required(FieldURL, input.URL).URL(FieldURL, input.URL)
	}

	return validator.Err()
}
