// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

func occurrenceColumns(alias string) string {
	return fmt.Sprintf("%[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s",
		alias,
		schema.RefOccurrence.ID, schema.RefOccurrence.ManuscriptID,
		schema.RefOccurrence.Incipit, schema.RefOccurrence.Verses, schema.RefOccurrence.Date,
		schema.RefOccurrence.FoliumStart, schema.RefOccurrence.FoliumEnd,
		schema.RefOccurrence.PageStart, schema.RefOccurrence.PageEnd,
		schema.RefOccurrence.GeneralLocation, schema.RefOccurrence.Public,
	)
}

// scanOccurrence maps one occurrence row. The carrying manuscript comes
// back as a bare id on the Manuscript pointer; the service decides
// whether to hydrate it.
func scanOccurrence(scan func(...any) error, extra ...any) (*Occurrence, error) {
	o := NewOccurrence(0, false, "")
	var manuscriptID *int
	var date string
	targets := append([]any{
		&o.ID, &manuscriptID,
		&o.Incipit, &o.Verses, &date,
		&o.FoliumStart, &o.FoliumEnd, &o.PageStart, &o.PageEnd,
		&o.GeneralLocation, &o.Public,
	}, extra...)
	if err := scan(targets...); err != nil {
		return nil, err
	}
	o.Date = fuzzydate.Parse(date)
	if manuscriptID != nil {
		o.Manuscript = NewManuscript(*manuscriptID, false, "", "", "")
	}
	return o, nil
}

func (repository *occurrenceRepository) ListOccurrences(context context.Context, f OccurrenceFilter, limit, offset int) ([]*Occurrence, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s o
		WHERE o.%s IS NULL
	`,
		occurrenceColumns("o"),
		schema.RefOccurrence.Table, schema.RefOccurrence.DeletedAt,
	)

	args := []any{}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		query += fmt.Sprintf(" AND o.%s ILIKE $%d", schema.RefOccurrence.Incipit, len(args))
	}
	if f.ManuscriptID != nil {
		args = append(args, *f.ManuscriptID)
		query += fmt.Sprintf(" AND o.%s = $%d", schema.RefOccurrence.ManuscriptID, len(args))
	}
	if f.PublicOnly {
		query += fmt.Sprintf(" AND o.%s = TRUE", schema.RefOccurrence.Public)
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY o.%s ASC LIMIT $%d OFFSET $%d",
		schema.RefOccurrence.ID, len(args)-1, len(args))

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_occurrences")
	}
	defer rows.Close()

	var occurrences []*Occurrence
	var total int
	for rows.Next() {
		o, err := scanOccurrence(rows.Scan, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_occurrence")
		}
		occurrences = append(occurrences, o)
	}

	return occurrences, total, nil
}

/*
GetOccurrence loads the occurrence row with its carrying manuscript and
content types hydrated. Person edges and related links load separately.
*/
func (repository *occurrenceRepository) GetOccurrence(context context.Context, id int) (*Occurrence, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s o
		WHERE o.%s = $1 AND o.%s IS NULL
	`,
		occurrenceColumns("o"),
		schema.RefOccurrence.Table, schema.RefOccurrence.ID, schema.RefOccurrence.DeletedAt,
	)

	o, err := scanOccurrence(repository.pool.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_occurrence")
	}

	if o.Manuscript != nil {
		manuscriptQuery := fmt.Sprintf(`
			SELECT %s
			FROM %s m
			WHERE m.%s = $1 AND m.%s IS NULL
		`,
			manuscriptColumns("m"),
			schema.RefManuscript.Table, schema.RefManuscript.ID, schema.RefManuscript.DeletedAt,
		)
		m, err := scanManuscript(repository.pool.QueryRow(context, manuscriptQuery, o.Manuscript.ID).Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "get_occurrence_manuscript")
		}
		o.Manuscript = m
	}

	typesQuery := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s
		FROM %s oc
		JOIN %s c ON c.%s = oc.%s
		WHERE oc.%s = $1 AND c.%s IS NULL
	`,
		schema.RefContent.ID, schema.RefContent.Name, schema.RefContent.ParentID,
		schema.RefOccurrenceContent.Table,
		schema.RefContent.Table, schema.RefContent.ID, schema.RefOccurrenceContent.ContentID,
		schema.RefOccurrenceContent.OccurrenceID, schema.RefContent.DeletedAt,
	)

	types, err := loadContents(context, repository.pool, typesQuery, id)
	if err != nil {
		return nil, err
	}
	o.Types = types

	return o, nil
}

func (repository *occurrenceRepository) CreateOccurrence(context context.Context, o *Occurrence) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefOccurrence.Table,
		schema.RefOccurrence.ManuscriptID,
		schema.RefOccurrence.Incipit, schema.RefOccurrence.Verses, schema.RefOccurrence.Date,
		schema.RefOccurrence.FoliumStart, schema.RefOccurrence.FoliumEnd,
		schema.RefOccurrence.PageStart, schema.RefOccurrence.PageEnd,
		schema.RefOccurrence.GeneralLocation, schema.RefOccurrence.Public,
		schema.RefOccurrence.CreatedAt, schema.RefOccurrence.UpdatedAt,
		schema.RefOccurrence.ID,
	)

	var manuscriptID *int
	if o.Manuscript != nil {
		manuscriptID = &o.Manuscript.ID
	}

	err := repository.pool.QueryRow(context, query,
		manuscriptID, o.Incipit, o.Verses, o.Date.Canonical(),
		o.FoliumStart, o.FoliumEnd, o.PageStart, o.PageEnd,
		o.GeneralLocation, o.Public,
	).Scan(&o.ID)
	return dberr.Wrap(err, "create_occurrence")
}

func (repository *occurrenceRepository) UpdateOccurrence(context context.Context, o *Occurrence) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefOccurrence.Table,
		schema.RefOccurrence.ManuscriptID,
		schema.RefOccurrence.Incipit, schema.RefOccurrence.Verses, schema.RefOccurrence.Date,
		schema.RefOccurrence.FoliumStart, schema.RefOccurrence.FoliumEnd,
		schema.RefOccurrence.PageStart, schema.RefOccurrence.PageEnd,
		schema.RefOccurrence.GeneralLocation, schema.RefOccurrence.Public,
		schema.RefOccurrence.UpdatedAt,
		schema.RefOccurrence.ID, schema.RefOccurrence.DeletedAt,
		schema.RefOccurrence.ID,
	)

	var manuscriptID *int
	if o.Manuscript != nil {
		manuscriptID = &o.Manuscript.ID
	}

	err := repository.pool.QueryRow(context, query,
		o.ID, manuscriptID, o.Incipit, o.Verses, o.Date.Canonical(),
		o.FoliumStart, o.FoliumEnd, o.PageStart, o.PageEnd,
		o.GeneralLocation, o.Public,
	).Scan(&o.ID)
	return dberr.Wrap(err, "update_occurrence")
}

func (repository *occurrenceRepository) DeleteOccurrence(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefOccurrence.Table, schema.RefOccurrence.DeletedAt,
		schema.RefOccurrence.ID, schema.RefOccurrence.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_occurrence")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *occurrenceRepository) ListPersonEdges(context context.Context, occurrenceID int) ([]PersonEdge, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s opr
		JOIN %s p ON p.%s = opr.%s
		JOIN %s r ON r.%s = opr.%s
		WHERE opr.%s = $1 AND p.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public,
		schema.RefOccurrencePersonRole.Table,
		schema.RefPerson.Table, schema.RefPerson.ID, schema.RefOccurrencePersonRole.PersonID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefOccurrencePersonRole.RoleID,
		schema.RefOccurrencePersonRole.OccurrenceID, schema.RefPerson.DeletedAt, schema.RefRole.DeletedAt,
	)

	return scanPersonEdges(context, repository.pool, query, occurrenceID, "list_occurrence_person_edges")
}

func (repository *occurrenceRepository) ReplacePersonRoles(context context.Context, occurrenceID int, bindings []RoleBinding) error {
	return inTransaction(context, repository.pool, "replace_occurrence_person_roles", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.RefOccurrencePersonRole.Table, schema.RefOccurrencePersonRole.OccurrenceID)
		if _, err := tx.Exec(context, deleteQuery, occurrenceID); err != nil {
			return dberr.Wrap(err, "clear_occurrence_person_roles")
		}

		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			SELECT $1, $2, r.%s
			FROM %s r
			WHERE r.%s = $3 AND r.%s IS NULL
		`,
			schema.RefOccurrencePersonRole.Table,
			schema.RefOccurrencePersonRole.OccurrenceID, schema.RefOccurrencePersonRole.PersonID,
			schema.RefOccurrencePersonRole.RoleID,
			schema.RefRole.ID,
			schema.RefRole.Table,
			schema.RefRole.SystemName, schema.RefRole.DeletedAt,
		)
		for _, binding := range bindings {
			cmd, err := tx.Exec(context, insertQuery, occurrenceID, binding.PersonID, binding.RoleSystemName)
			if err != nil {
				return dberr.Wrap(err, "insert_occurrence_person_role")
			}
			if cmd.RowsAffected() == 0 {
				return dberr.ErrNotFound
			}
		}
		return nil
	})
}

func (repository *occurrenceRepository) ReplaceContents(context context.Context, occurrenceID int, contentIDs []int) error {
	return inTransaction(context, repository.pool, "replace_occurrence_contents", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.RefOccurrenceContent.Table, schema.RefOccurrenceContent.OccurrenceID)
		if _, err := tx.Exec(context, deleteQuery, occurrenceID); err != nil {
			return dberr.Wrap(err, "clear_occurrence_contents")
		}

		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.RefOccurrenceContent.Table,
			schema.RefOccurrenceContent.OccurrenceID, schema.RefOccurrenceContent.ContentID)
		for _, contentID := range contentIDs {
			if _, err := tx.Exec(context, insertQuery, occurrenceID, contentID); err != nil {
				return dberr.Wrap(err, "insert_occurrence_content")
			}
		}
		return nil
	})
}

func (repository *occurrenceRepository) ListRelated(context context.Context, occurrenceID int) ([]RelatedOccurrence, error) {
	query := fmt.Sprintf(`
		SELECT rel.%s, o.%s, o.%s, o.%s
		FROM %s rel
		JOIN %s o ON o.%s = rel.%s
		WHERE rel.%s = $1 AND o.%s IS NULL
		ORDER BY o.%s ASC
	`,
		schema.RefOccurrenceRelated.SharedVerses,
		schema.RefOccurrence.ID, schema.RefOccurrence.Incipit, schema.RefOccurrence.Public,
		schema.RefOccurrenceRelated.Table,
		schema.RefOccurrence.Table, schema.RefOccurrence.ID, schema.RefOccurrenceRelated.RelatedID,
		schema.RefOccurrenceRelated.OccurrenceID, schema.RefOccurrence.DeletedAt,
		schema.RefOccurrence.ID,
	)

	rows, err := repository.pool.Query(context, query, occurrenceID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_related_occurrences")
	}
	defer rows.Close()

	var related []RelatedOccurrence
	for rows.Next() {
		link := RelatedOccurrence{Occurrence: NewOccurrence(0, false, "")}
		if err := rows.Scan(&link.SharedVerses,
			&link.Occurrence.ID, &link.Occurrence.Incipit, &link.Occurrence.Public,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_related_occurrence")
		}
		related = append(related, link)
	}

	return related, nil
}

// ReplaceRelated rewrites the related links in both directions so the
// flat set stays mutual.
func (repository *occurrenceRepository) ReplaceRelated(context context.Context, occurrenceID int, related []RelatedOccurrence) error {
	return inTransaction(context, repository.pool, "replace_related_occurrences", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 OR %s = $1`,
			schema.RefOccurrenceRelated.Table,
			schema.RefOccurrenceRelated.OccurrenceID, schema.RefOccurrenceRelated.RelatedID)
		if _, err := tx.Exec(context, deleteQuery, occurrenceID); err != nil {
			return dberr.Wrap(err, "clear_related_occurrences")
		}

		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3), ($2, $1, $3)`,
			schema.RefOccurrenceRelated.Table,
			schema.RefOccurrenceRelated.OccurrenceID, schema.RefOccurrenceRelated.RelatedID,
			schema.RefOccurrenceRelated.SharedVerses)
		for _, link := range related {
			if _, err := tx.Exec(context, insertQuery, occurrenceID, link.Occurrence.ID, link.SharedVerses); err != nil {
				return dberr.Wrap(err, "insert_related_occurrence")
			}
		}
		return nil
	})
}
