// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

/*
ListPersons returns a filtered, paginated slice of persons and the total
count. Rows only: association graphs are not loaded for list views.
*/
func (repository *personRepository) ListPersons(context context.Context, f PersonFilter, limit, offset int) ([]*Person, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL
	`,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public, schema.RefPerson.BornDate, schema.RefPerson.DeathDate,
		schema.RefPerson.Attestations,
		schema.RefPerson.Table, schema.RefPerson.DeletedAt,
	)

	args := []any{}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		argN := strconv.Itoa(len(args))
		query += fmt.Sprintf(" AND (%s ILIKE $%s OR %s ILIKE $%s)",
			schema.RefPerson.FirstName, argN, schema.RefPerson.LastName, argN)
	}
	for _, flag := range []struct {
		column string
		value  *bool
	}{
		{schema.RefPerson.Historical, f.Historical},
		{schema.RefPerson.Modern, f.Modern},
		{schema.RefPerson.Editorial, f.Editorial},
	} {
		if flag.value != nil {
			args = append(args, *flag.value)
			query += fmt.Sprintf(" AND %s = $%d", flag.column, len(args))
		}
	}
	if f.PublicOnly {
		query += fmt.Sprintf(" AND %s = TRUE", schema.RefPerson.Public)
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		schema.RefPerson.LastName, schema.RefPerson.FirstName, len(args)-1, len(args))

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_persons")
	}
	defer rows.Close()

	var persons []*Person
	var total int
	for rows.Next() {
		p := NewPerson(0, false, "", "")
		var born, death string
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName,
			&p.Historical, &p.Modern, &p.Editorial,
			&p.Public, &born, &death, &p.Attestations, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		p.BornDate = fuzzydate.Parse(born)
		p.DeathDate = fuzzydate.Parse(death)
		persons = append(persons, p)
	}

	return persons, total, nil
}

func (repository *personRepository) GetPerson(context context.Context, id int) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public, schema.RefPerson.BornDate, schema.RefPerson.DeathDate,
		schema.RefPerson.Attestations,
		schema.RefPerson.Table, schema.RefPerson.ID, schema.RefPerson.DeletedAt,
	)

	p := NewPerson(0, false, "", "")
	var born, death string
	err := repository.pool.QueryRow(context, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName,
		&p.Historical, &p.Modern, &p.Editorial,
		&p.Public, &born, &death, &p.Attestations,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}

	p.BornDate = fuzzydate.Parse(born)
	p.DeathDate = fuzzydate.Parse(death)
	return p, nil
}

func (repository *personRepository) CreatePerson(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefPerson.Table,
		schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public, schema.RefPerson.BornDate, schema.RefPerson.DeathDate,
		schema.RefPerson.Attestations,
		schema.RefPerson.CreatedAt, schema.RefPerson.UpdatedAt,
		schema.RefPerson.ID,
	)

	err := repository.pool.QueryRow(context, query,
		p.FirstName, p.LastName, p.Historical, p.Modern, p.Editorial,
		p.Public, p.BornDate.Canonical(), p.DeathDate.Canonical(), p.Attestations,
	).Scan(&p.ID)
	return dberr.Wrap(err, "create_person")
}

func (repository *personRepository) UpdatePerson(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefPerson.Table,
		schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public, schema.RefPerson.BornDate, schema.RefPerson.DeathDate,
		schema.RefPerson.Attestations, schema.RefPerson.UpdatedAt,
		schema.RefPerson.ID, schema.RefPerson.DeletedAt,
		schema.RefPerson.ID,
	)

	err := repository.pool.QueryRow(context, query,
		p.ID, p.FirstName, p.LastName, p.Historical, p.Modern, p.Editorial,
		p.Public, p.BornDate.Canonical(), p.DeathDate.Canonical(), p.Attestations,
	).Scan(&p.ID)
	return dberr.Wrap(err, "update_person")
}

func (repository *personRepository) DeletePerson(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefPerson.Table, schema.RefPerson.DeletedAt, schema.RefPerson.ID, schema.RefPerson.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_person")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
ListManuscriptEdges loads the person's manuscript associations as loose
edges.

Direct edges come from the manuscript junction table; inherited edges
come from the occurrence junction table joined onto each occurrence's
carrying manuscript, with the occurrence kept as the contributing
intermediate.
*/
func (repository *personRepository) ListManuscriptEdges(context context.Context, personID int) ([]ManuscriptEdge, error) {
	directQuery := fmt.Sprintf(`
		SELECT r.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s
		FROM %s mpr
		JOIN %s m ON m.%s = mpr.%s
		JOIN %s r ON r.%s = mpr.%s
		WHERE mpr.%s = $1 AND m.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefManuscript.ID, schema.RefManuscript.City, schema.RefManuscript.Library,
		schema.RefManuscript.Shelf, schema.RefManuscript.Date, schema.RefManuscript.Status,
		schema.RefManuscript.Public,
		schema.RefManuscriptPersonRole.Table,
		schema.RefManuscript.Table, schema.RefManuscript.ID, schema.RefManuscriptPersonRole.ManuscriptID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefManuscriptPersonRole.RoleID,
		schema.RefManuscriptPersonRole.PersonID, schema.RefManuscript.DeletedAt, schema.RefRole.DeletedAt,
	)

	rows, err := repository.pool.Query(context, directQuery, personID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_manuscript_edges")
	}
	defer rows.Close()

	var edges []ManuscriptEdge
	for rows.Next() {
		edge := ManuscriptEdge{Manuscript: NewManuscript(0, false, "", "", "")}
		var date string
		if err := rows.Scan(&edge.RoleSystemName,
			&edge.Manuscript.ID, &edge.Manuscript.City, &edge.Manuscript.Library,
			&edge.Manuscript.Shelf, &date, &edge.Manuscript.Status, &edge.Manuscript.Public,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_manuscript_edge")
		}
		edge.Manuscript.Date = fuzzydate.Parse(date)
		edges = append(edges, edge)
	}
	rows.Close()

	inheritedQuery := fmt.Sprintf(`
		SELECT r.%s,
			m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s,
			o.%s, o.%s, o.%s
		FROM %s opr
		JOIN %s o ON o.%s = opr.%s
		JOIN %s m ON m.%s = o.%s
		JOIN %s r ON r.%s = opr.%s
		WHERE opr.%s = $1 AND o.%s IS NULL AND m.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefManuscript.ID, schema.RefManuscript.City, schema.RefManuscript.Library,
		schema.RefManuscript.Shelf, schema.RefManuscript.Date, schema.RefManuscript.Status,
		schema.RefManuscript.Public,
		schema.RefOccurrence.ID, schema.RefOccurrence.Incipit, schema.RefOccurrence.Public,
		schema.RefOccurrencePersonRole.Table,
		schema.RefOccurrence.Table, schema.RefOccurrence.ID, schema.RefOccurrencePersonRole.OccurrenceID,
		schema.RefManuscript.Table, schema.RefManuscript.ID, schema.RefOccurrence.ManuscriptID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefOccurrencePersonRole.RoleID,
		schema.RefOccurrencePersonRole.PersonID,
		schema.RefOccurrence.DeletedAt, schema.RefManuscript.DeletedAt, schema.RefRole.DeletedAt,
	)

	inheritedRows, err := repository.pool.Query(context, inheritedQuery, personID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_inherited_edges")
	}
	defer inheritedRows.Close()

	for inheritedRows.Next() {
		edge := ManuscriptEdge{
			Manuscript: NewManuscript(0, false, "", "", ""),
			Occurrence: NewOccurrence(0, false, ""),
		}
		var date string
		if err := inheritedRows.Scan(&edge.RoleSystemName,
			&edge.Manuscript.ID, &edge.Manuscript.City, &edge.Manuscript.Library,
			&edge.Manuscript.Shelf, &date, &edge.Manuscript.Status, &edge.Manuscript.Public,
			&edge.Occurrence.ID, &edge.Occurrence.Incipit, &edge.Occurrence.Public,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_inherited_edge")
		}
		edge.Manuscript.Date = fuzzydate.Parse(date)
		edges = append(edges, edge)
	}

	return edges, nil
}

/*
ListDocumentEdges loads the person's bibliographic associations. The
document rows come back as fully typed subtypes via the kind
discriminator.
*/
func (repository *personRepository) ListDocumentEdges(context context.Context, personID int) ([]DocumentEdge, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, %s
		FROM %s dpr
		JOIN %s d ON d.%s = dpr.%s
		JOIN %s r ON r.%s = dpr.%s
		WHERE dpr.%s = $1 AND d.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		documentSelectColumns("d"),
		schema.RefDocumentPersonRole.Table,
		schema.RefDocument.Table, schema.RefDocument.ID, schema.RefDocumentPersonRole.DocumentID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefDocumentPersonRole.RoleID,
		schema.RefDocumentPersonRole.PersonID, schema.RefDocument.DeletedAt, schema.RefRole.DeletedAt,
	)

	rows, err := repository.pool.Query(context, query, personID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_document_edges")
	}
	defer rows.Close()

	var edges []DocumentEdge
	for rows.Next() {
		var edge DocumentEdge
		row := &documentRow{}
		targets := append([]any{&edge.RoleSystemName}, row.scanTargets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, dberr.Wrap(err, "scan_document_edge")
		}
		edge.Document = row.build()
		edges = append(edges, edge)
	}

	return edges, nil
}
