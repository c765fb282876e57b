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

func manuscriptColumns(alias string) string {
	return fmt.Sprintf("%[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s",
		alias,
		schema.RefManuscript.ID, schema.RefManuscript.City, schema.RefManuscript.Library,
		schema.RefManuscript.Shelf, schema.RefManuscript.Date, schema.RefManuscript.Status,
		schema.RefManuscript.Public,
	)
}

func scanManuscript(scan func(...any) error, extra ...any) (*Manuscript, error) {
	m := NewManuscript(0, false, "", "", "")
	var date string
	targets := append([]any{
		&m.ID, &m.City, &m.Library, &m.Shelf, &date, &m.Status, &m.Public,
	}, extra...)
	if err := scan(targets...); err != nil {
		return nil, err
	}
	m.Date = fuzzydate.Parse(date)
	return m, nil
}

func (repository *manuscriptRepository) ListManuscripts(context context.Context, f ManuscriptFilter, limit, offset int) ([]*Manuscript, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s m
		WHERE m.%s IS NULL
	`,
		manuscriptColumns("m"),
		schema.RefManuscript.Table, schema.RefManuscript.DeletedAt,
	)

	args := []any{}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		argN := len(args)
		query += fmt.Sprintf(" AND (m.%s ILIKE $%d OR m.%s ILIKE $%d OR m.%s ILIKE $%d)",
			schema.RefManuscript.City, argN, schema.RefManuscript.Library, argN,
			schema.RefManuscript.Shelf, argN)
	}
	if f.City != "" {
		args = append(args, f.City)
		query += fmt.Sprintf(" AND m.%s = $%d", schema.RefManuscript.City, len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		query += fmt.Sprintf(" AND m.%s = $%d", schema.RefManuscript.Status, len(args))
	}
	if f.PublicOnly {
		query += fmt.Sprintf(" AND m.%s = TRUE", schema.RefManuscript.Public)
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.%s ASC, m.%s ASC, m.%s ASC LIMIT $%d OFFSET $%d",
		schema.RefManuscript.City, schema.RefManuscript.Library, schema.RefManuscript.Shelf,
		len(args)-1, len(args))

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_manuscripts")
	}
	defer rows.Close()

	var manuscripts []*Manuscript
	var total int
	for rows.Next() {
		m, err := scanManuscript(rows.Scan, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_manuscript")
		}
		manuscripts = append(manuscripts, m)
	}

	return manuscripts, total, nil
}

/*
GetManuscript loads the manuscript row together with its content
classification. Occurrences and person edges are loaded separately so
the service controls assembly order.
*/
func (repository *manuscriptRepository) GetManuscript(context context.Context, id int) (*Manuscript, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
		WHERE m.%s = $1 AND m.%s IS NULL
	`,
		manuscriptColumns("m"),
		schema.RefManuscript.Table, schema.RefManuscript.ID, schema.RefManuscript.DeletedAt,
	)

	m, err := scanManuscript(repository.pool.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_manuscript")
	}
	m.Title = m.DisplayName()

	contentsQuery := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s
		FROM %s mc
		JOIN %s c ON c.%s = mc.%s
		WHERE mc.%s = $1 AND c.%s IS NULL
	`,
		schema.RefContent.ID, schema.RefContent.Name, schema.RefContent.ParentID,
		schema.RefManuscriptContent.Table,
		schema.RefContent.Table, schema.RefContent.ID, schema.RefManuscriptContent.ContentID,
		schema.RefManuscriptContent.ManuscriptID, schema.RefContent.DeletedAt,
	)

	contents, err := loadContents(context, repository.pool, contentsQuery, id)
	if err != nil {
		return nil, err
	}
	m.Contents = contents

	return m, nil
}

func (repository *manuscriptRepository) CreateManuscript(context context.Context, m *Manuscript) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefManuscript.Table,
		schema.RefManuscript.City, schema.RefManuscript.Library, schema.RefManuscript.Shelf,
		schema.RefManuscript.Date, schema.RefManuscript.Status, schema.RefManuscript.Public,
		schema.RefManuscript.CreatedAt, schema.RefManuscript.UpdatedAt,
		schema.RefManuscript.ID,
	)

	err := repository.pool.QueryRow(context, query,
		m.City, m.Library, m.Shelf, m.Date.Canonical(), string(m.Status), m.Public,
	).Scan(&m.ID)
	return dberr.Wrap(err, "create_manuscript")
}

func (repository *manuscriptRepository) UpdateManuscript(context context.Context, m *Manuscript) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefManuscript.Table,
		schema.RefManuscript.City, schema.RefManuscript.Library, schema.RefManuscript.Shelf,
		schema.RefManuscript.Date, schema.RefManuscript.Status, schema.RefManuscript.Public,
		schema.RefManuscript.UpdatedAt,
		schema.RefManuscript.ID, schema.RefManuscript.DeletedAt,
		schema.RefManuscript.ID,
	)

	err := repository.pool.QueryRow(context, query,
		m.ID, m.City, m.Library, m.Shelf, m.Date.Canonical(), string(m.Status), m.Public,
	).Scan(&m.ID)
	return dberr.Wrap(err, "update_manuscript")
}

func (repository *manuscriptRepository) DeleteManuscript(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefManuscript.Table, schema.RefManuscript.DeletedAt,
		schema.RefManuscript.ID, schema.RefManuscript.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_manuscript")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *manuscriptRepository) ListOccurrences(context context.Context, manuscriptID int) ([]*Occurrence, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s o
		WHERE o.%s = $1 AND o.%s IS NULL
		ORDER BY o.%s ASC
	`,
		occurrenceColumns("o"),
		schema.RefOccurrence.Table,
		schema.RefOccurrence.ManuscriptID, schema.RefOccurrence.DeletedAt,
		schema.RefOccurrence.ID,
	)

	rows, err := repository.pool.Query(context, query, manuscriptID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_manuscript_occurrences")
	}
	defer rows.Close()

	var occurrences []*Occurrence
	for rows.Next() {
		o, err := scanOccurrence(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_occurrence")
		}
		occurrences = append(occurrences, o)
	}

	return occurrences, nil
}

/*
ListPersonEdges loads direct and occurrence-inherited person
associations. Inherited edges carry the contributing occurrence so the
service can wire it as the visibility intermediate.
*/
func (repository *manuscriptRepository) ListPersonEdges(context context.Context, manuscriptID int) ([]PersonEdge, error) {
	directQuery := fmt.Sprintf(`
		SELECT r.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s mpr
		JOIN %s p ON p.%s = mpr.%s
		JOIN %s r ON r.%s = mpr.%s
		WHERE mpr.%s = $1 AND p.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public,
		schema.RefManuscriptPersonRole.Table,
		schema.RefPerson.Table, schema.RefPerson.ID, schema.RefManuscriptPersonRole.PersonID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefManuscriptPersonRole.RoleID,
		schema.RefManuscriptPersonRole.ManuscriptID, schema.RefPerson.DeletedAt, schema.RefRole.DeletedAt,
	)

	edges, err := scanPersonEdges(context, repository.pool, directQuery, manuscriptID, "list_manuscript_person_edges")
	if err != nil {
		return nil, err
	}

	inheritedQuery := fmt.Sprintf(`
		SELECT r.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			o.%s, o.%s, o.%s
		FROM %s opr
		JOIN %s o ON o.%s = opr.%s
		JOIN %s p ON p.%s = opr.%s
		JOIN %s r ON r.%s = opr.%s
		WHERE o.%s = $1 AND o.%s IS NULL AND p.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public,
		schema.RefOccurrence.ID, schema.RefOccurrence.Incipit, schema.RefOccurrence.Public,
		schema.RefOccurrencePersonRole.Table,
		schema.RefOccurrence.Table, schema.RefOccurrence.ID, schema.RefOccurrencePersonRole.OccurrenceID,
		schema.RefPerson.Table, schema.RefPerson.ID, schema.RefOccurrencePersonRole.PersonID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefOccurrencePersonRole.RoleID,
		schema.RefOccurrence.ManuscriptID, schema.RefOccurrence.DeletedAt,
		schema.RefPerson.DeletedAt, schema.RefRole.DeletedAt,
	)

	rows, err := repository.pool.Query(context, inheritedQuery, manuscriptID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_manuscript_inherited_edges")
	}
	defer rows.Close()

	for rows.Next() {
		edge := PersonEdge{
			Person:     NewPerson(0, false, "", ""),
			Occurrence: NewOccurrence(0, false, ""),
		}
		if err := rows.Scan(&edge.RoleSystemName,
			&edge.Person.ID, &edge.Person.FirstName, &edge.Person.LastName,
			&edge.Person.Historical, &edge.Person.Modern, &edge.Person.Editorial,
			&edge.Person.Public,
			&edge.Occurrence.ID, &edge.Occurrence.Incipit, &edge.Occurrence.Public,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_inherited_person_edge")
		}
		edges = append(edges, edge)
	}

	return edges, nil
}

func (repository *manuscriptRepository) ReplacePersonRoles(context context.Context, manuscriptID int, bindings []RoleBinding) error {
	return inTransaction(context, repository.pool, "replace_manuscript_person_roles", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.RefManuscriptPersonRole.Table, schema.RefManuscriptPersonRole.ManuscriptID)
		if _, err := tx.Exec(context, deleteQuery, manuscriptID); err != nil {
			return dberr.Wrap(err, "clear_manuscript_person_roles")
		}

		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			SELECT $1, $2, r.%s
			FROM %s r
			WHERE r.%s = $3 AND r.%s IS NULL
		`,
			schema.RefManuscriptPersonRole.Table,
			schema.RefManuscriptPersonRole.ManuscriptID, schema.RefManuscriptPersonRole.PersonID,
			schema.RefManuscriptPersonRole.RoleID,
			schema.RefRole.ID,
			schema.RefRole.Table,
			schema.RefRole.SystemName, schema.RefRole.DeletedAt,
		)
		for _, binding := range bindings {
			cmd, err := tx.Exec(context, insertQuery, manuscriptID, binding.PersonID, binding.RoleSystemName)
			if err != nil {
				return dberr.Wrap(err, "insert_manuscript_person_role")
			}
			if cmd.RowsAffected() == 0 {
				return dberr.ErrNotFound
			}
		}
		return nil
	})
}

func (repository *manuscriptRepository) ReplaceContents(context context.Context, manuscriptID int, contentIDs []int) error {
	return inTransaction(context, repository.pool, "replace_manuscript_contents", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.RefManuscriptContent.Table, schema.RefManuscriptContent.ManuscriptID)
		if _, err := tx.Exec(context, deleteQuery, manuscriptID); err != nil {
			return dberr.Wrap(err, "clear_manuscript_contents")
		}

		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.RefManuscriptContent.Table,
			schema.RefManuscriptContent.ManuscriptID, schema.RefManuscriptContent.ContentID)
		for _, contentID := range contentIDs {
			if _, err := tx.Exec(context, insertQuery, manuscriptID, contentID); err != nil {
				return dberr.Wrap(err, "insert_manuscript_content")
			}
		}
		return nil
	})
}

