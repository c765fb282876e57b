// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/platform/apperr"
)

// indexBatchSize is the page size used when walking a record family for
// an index export.
const indexBatchSize = 200

// # Index Export

/*
ExportIndex flattens one record family into search index documents.

Description: Walks every record of the requested kind, assembles it with
its full association graphs, and flattens it into the parallel
public/internal field layout the search engine consumes. The export is
cached per kind and dropped whenever any record of the kind changes.

Parameters:
  - context: context.Context
  - kind: string (One of the Kind*Record constants)

Returns:
  - []SearchDocument: The flattened export, in storage order
  - error: Unknown kind or assembly failures
*/
func (service *Service) ExportIndex(context context.Context, kind string) ([]SearchDocument, error) {
	if documents, ok := service.cache.GetIndex(context, kind); ok {
		return documents, nil
	}

	var documents []SearchDocument
	var err error
	switch kind {
	case KindPersonRecord:
		documents, err = service.exportPersons(context)
	case KindManuscriptRecord:
		documents, err = service.exportManuscripts(context)
	case KindOccurrenceRecord:
		documents, err = service.exportOccurrences(context)
	case KindDocumentRecord:
		documents, err = service.exportDocuments(context)
	default:
		return nil, apperr.ValidationError("Unknown index kind: " + kind)
	}
	if err != nil {
		return nil, err
	}

	if err := service.cache.SetIndex(context, kind, documents); err != nil {
		service.logger.Warn("index_cache_write_failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}

	service.logger.Info("index_exported",
		slog.String("kind", kind),
		slog.Int("documents", len(documents)),
	)
	return documents, nil
}

func (service *Service) exportPersons(context context.Context) ([]SearchDocument, error) {
	var documents []SearchDocument
	for offset := 0; ; offset += indexBatchSize {
		rows, _, err := service.persons.ListPersons(context, PersonFilter{}, indexBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			p, err := service.assemblePerson(context, row.ID)
			if err != nil {
				return nil, err
			}
			documents = append(documents, PersonSearchDocument(p))
		}
		if len(rows) < indexBatchSize {
			return documents, nil
		}
	}
}

func (service *Service) exportManuscripts(context context.Context) ([]SearchDocument, error) {
	var documents []SearchDocument
	for offset := 0; ; offset += indexBatchSize {
		rows, _, err := service.manuscripts.ListManuscripts(context, ManuscriptFilter{}, indexBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			m, err := service.assembleManuscript(context, row.ID)
			if err != nil {
				return nil, err
			}
			documents = append(documents, ManuscriptSearchDocument(m))
		}
		if len(rows) < indexBatchSize {
			return documents, nil
		}
	}
}

func (service *Service) exportOccurrences(context context.Context) ([]SearchDocument, error) {
	var documents []SearchDocument
	for offset := 0; ; offset += indexBatchSize {
		rows, _, err := service.occurrences.ListOccurrences(context, OccurrenceFilter{}, indexBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			o, err := service.assembleOccurrence(context, row.ID)
			if err != nil {
				return nil, err
			}
			documents = append(documents, OccurrenceSearchDocument(o))
		}
		if len(rows) < indexBatchSize {
			return documents, nil
		}
	}
}

func (service *Service) exportDocuments(context context.Context) ([]SearchDocument, error) {
	var documents []SearchDocument
	for offset := 0; ; offset += indexBatchSize {
		rows, _, err := service.documents.ListDocuments(context, DocumentFilter{}, indexBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			b, err := service.assembleDocument(context, row.EntityID())
			if err != nil {
				return nil, err
			}
			documents = append(documents, BiblioSearchDocument(b))
		}
		if len(rows) < indexBatchSize {
			return documents, nil
		}
	}
}
