// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/platform/validate"
)

// # Content Taxonomy

// ListContents returns the whole classification tree as a flat list with
// parent pointers linked.
func (service *Service) ListContents(context context.Context) ([]*Content, error) {
	return service.contents.ListContents(context)
}

func (service *Service) CreateContent(context context.Context, c *Content) error {
	if err := service.validateContent(c); err != nil {
		return err
	}

	if err := service.contents.CreateContent(context, c); err != nil {
		return err
	}

	service.logger.Info("content_created",
		slog.Int("content_id", c.ID),
		slog.String("name", c.Name),
	)
	return nil
}

func (service *Service) UpdateContent(context context.Context, id int, c *Content) error {
	c.ID = id
	if err := service.validateContent(c); err != nil {
		return err
	}

	if err := service.contents.UpdateContent(context, c); err != nil {
		return err
	}

	// A renamed node changes the rendered paths of every record below
	// it; the per-record views age out via TTL, the exports drop now.
	service.dropIndexes(context)
	service.logger.Info("content_updated", slog.Int("content_id", id))
	return nil
}

func (service *Service) DeleteContent(context context.Context, id int) error {
	if err := service.contents.DeleteContent(context, id); err != nil {
		return err
	}

	service.dropIndexes(context)
	service.logger.Warn("content_deleted", slog.Int("content_id", id))
	return nil
}

func (service *Service) dropIndexes(context context.Context) {
	for _, kind := range []string{KindManuscriptRecord, KindOccurrenceRecord} {
		if err := service.cache.InvalidateIndex(context, kind); err != nil {
			service.logger.Warn("index_cache_invalidate_failed",
				slog.String("kind", kind),
				slog.Any("error", err),
			)
		}
	}
}

func (service *Service) validateContent(c *Content) error {
	validator := &validate.Validator{}
	validator.Required("name", c.Name).MaxLen("name", c.Name, 200)
	validator.Custom("parent_id", c.Parent != nil && c.Parent.ID == c.ID,
		"a content node cannot be its own parent")
	return validator.Err()
}
