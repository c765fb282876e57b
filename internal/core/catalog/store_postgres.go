// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
)

// PostgreSQL repositories for the catalogue.
//
// Every read loads flat rows; junction tables are read as loose edges
// and assembled into association graphs by the service. Writes that
// touch a record plus its junction rows run inside a single
// transaction.

// # Repository Construction

type personRepository struct {
	pool *pgxpool.Pool
}

// NewPersonRepository constructs a PostgreSQL backed person store.
func NewPersonRepository(pool *pgxpool.Pool) PersonRepository {
	return &personRepository{pool: pool}
}

type manuscriptRepository struct {
	pool *pgxpool.Pool
}

// NewManuscriptRepository constructs a PostgreSQL backed manuscript store.
func NewManuscriptRepository(pool *pgxpool.Pool) ManuscriptRepository {
	return &manuscriptRepository{pool: pool}
}

type occurrenceRepository struct {
	pool *pgxpool.Pool
}

// NewOccurrenceRepository constructs a PostgreSQL backed occurrence store.
func NewOccurrenceRepository(pool *pgxpool.Pool) OccurrenceRepository {
	return &occurrenceRepository{pool: pool}
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository constructs a PostgreSQL backed bibliography store.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository constructs a PostgreSQL backed classification store.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

// # Shared Helpers

// scanPersonEdges runs a query whose rows are (role system name, person
// columns) and maps them to direct edges. Shared by every junction read
// that loads persons.
func scanPersonEdges(context context.Context, pool *pgxpool.Pool, query string, recordID int, action string) ([]PersonEdge, error) {
	rows, err := pool.Query(context, query, recordID)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var edges []PersonEdge
	for rows.Next() {
		edge := PersonEdge{Person: NewPerson(0, false, "", "")}
		if err := rows.Scan(&edge.RoleSystemName,
			&edge.Person.ID, &edge.Person.FirstName, &edge.Person.LastName,
			&edge.Person.Historical, &edge.Person.Modern, &edge.Person.Editorial,
			&edge.Person.Public,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_person_edge")
		}
		edges = append(edges, edge)
	}

	return edges, nil
}

// loadContents runs a (id, name, parentid) query, then resolves the
// parent chain so every node carries its full classification path. The
// content table is small; resolution fetches missing ancestors in
// batches until closure.
func loadContents(context context.Context, pool *pgxpool.Pool, query string, recordID int) ([]*Content, error) {
	rows, err := pool.Query(context, query, recordID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contents")
	}
	defer rows.Close()

	type contentRow struct {
		content  *Content
		parentID *int
	}

	loaded := make(map[int]*contentRow)
	var linked []*Content
	for rows.Next() {
		row := &contentRow{content: &Content{}}
		if err := rows.Scan(&row.content.ID, &row.content.Name, &row.parentID); err != nil {
			return nil, dberr.Wrap(err, "scan_content")
		}
		loaded[row.content.ID] = row
		linked = append(linked, row.content)
	}
	rows.Close()

	for {
		var missing []int
		for _, row := range loaded {
			if row.parentID != nil {
				if _, ok := loaded[*row.parentID]; !ok {
					missing = append(missing, *row.parentID)
				}
			}
		}
		if len(missing) == 0 {
			break
		}

		ancestorQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1) AND %s IS NULL`,
			schema.RefContent.ID, schema.RefContent.Name, schema.RefContent.ParentID,
			schema.RefContent.Table, schema.RefContent.ID, schema.RefContent.DeletedAt,
		)
		ancestorRows, err := pool.Query(context, ancestorQuery, missing)
		if err != nil {
			return nil, dberr.Wrap(err, "load_content_ancestors")
		}
		for ancestorRows.Next() {
			row := &contentRow{content: &Content{}}
			if err := ancestorRows.Scan(&row.content.ID, &row.content.Name, &row.parentID); err != nil {
				ancestorRows.Close()
				return nil, dberr.Wrap(err, "scan_content_ancestor")
			}
			loaded[row.content.ID] = row
		}
		ancestorRows.Close()
	}

	for _, row := range loaded {
		if row.parentID != nil {
			if parent, ok := loaded[*row.parentID]; ok {
				row.content.Parent = parent.content
			}
		}
	}

	return linked, nil
}

// inTransaction runs fn inside a transaction, committing on success and
// rolling back on any error.
func inTransaction(context context.Context, pool *pgxpool.Pool, action string, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	defer tx.Rollback(context)

	if err := fn(tx); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), action)
}
