// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
)

func (repository *contentRepository) ListContents(context context.Context) ([]*Content, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC
	`,
		schema.RefContent.ID, schema.RefContent.Name, schema.RefContent.ParentID,
		schema.RefContent.Table, schema.RefContent.DeletedAt,
		schema.RefContent.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contents")
	}
	defer rows.Close()

	byID := make(map[int]*Content)
	parents := make(map[int]int)
	var contents []*Content
	for rows.Next() {
		content := &Content{}
		var parentID *int
		if err := rows.Scan(&content.ID, &content.Name, &parentID); err != nil {
			return nil, dberr.Wrap(err, "scan_content")
		}
		byID[content.ID] = content
		if parentID != nil {
			parents[content.ID] = *parentID
		}
		contents = append(contents, content)
	}

	for id, parentID := range parents {
		if parent, ok := byID[parentID]; ok {
			byID[id].Parent = parent
		}
	}

	return contents, nil
}

func (repository *contentRepository) CreateContent(context context.Context, c *Content) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefContent.Table, schema.RefContent.Name, schema.RefContent.ParentID,
		schema.RefContent.CreatedAt, schema.RefContent.UpdatedAt,
		schema.RefContent.ID,
	)

	var parentID *int
	if c.Parent != nil {
		parentID = &c.Parent.ID
	}

	err := repository.pool.QueryRow(context, query, c.Name, parentID).Scan(&c.ID)
	return dberr.Wrap(err, "create_content")
}

func (repository *contentRepository) UpdateContent(context context.Context, c *Content) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefContent.Table, schema.RefContent.Name, schema.RefContent.ParentID,
		schema.RefContent.UpdatedAt,
		schema.RefContent.ID, schema.RefContent.DeletedAt,
		schema.RefContent.ID,
	)

	var parentID *int
	if c.Parent != nil {
		parentID = &c.Parent.ID
	}

	err := repository.pool.QueryRow(context, query, c.ID, c.Name, parentID).Scan(&c.ID)
	return dberr.Wrap(err, "update_content")
}

func (repository *contentRepository) DeleteContent(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefContent.Table, schema.RefContent.DeletedAt,
		schema.RefContent.ID, schema.RefContent.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_content")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
