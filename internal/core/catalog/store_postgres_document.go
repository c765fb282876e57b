// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

// # Row Mapping
//
// Bibliographic records live in one table with a kind discriminator.
// documentRow is the flat scan target; build projects it into the
// concrete subtype.

type documentRow struct {
	ID               int
	Kind             string
	Title            string
	Year             *int
	Forthcoming      bool
	City             string
	Publisher        string
	Volume           string
	Journal          string
	Number           string
	PageStart        *int
	PageEnd          *int
	RawPages         string
	BookTitle        string
	Institution      string
	URL              string
	LastAccessed     *int
	Date             string
	Acknowledgements []string
	Public           bool
}

// documentSelectColumns renders the full column list with the given
// table alias, in documentRow scan order.
func documentSelectColumns(alias string) string {
	columns := []string{
		schema.RefDocument.ID, schema.RefDocument.Kind, schema.RefDocument.Title,
		schema.RefDocument.Year, schema.RefDocument.Forthcoming,
		schema.RefDocument.City, schema.RefDocument.Publisher, schema.RefDocument.Volume,
		schema.RefDocument.Journal, schema.RefDocument.Number,
		schema.RefDocument.PageStart, schema.RefDocument.PageEnd, schema.RefDocument.RawPages,
		schema.RefDocument.BookTitle, schema.RefDocument.Institution,
		schema.RefDocument.URL, schema.RefDocument.LastAccessed,
		schema.RefDocument.Date, schema.RefDocument.Acknowledgements, schema.RefDocument.Public,
	}
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

func (row *documentRow) scanTargets() []any {
	return []any{
		&row.ID, &row.Kind, &row.Title,
		&row.Year, &row.Forthcoming,
		&row.City, &row.Publisher, &row.Volume,
		&row.Journal, &row.Number,
		&row.PageStart, &row.PageEnd, &row.RawPages,
		&row.BookTitle, &row.Institution,
		&row.URL, &row.LastAccessed,
		&row.Date, &row.Acknowledgements, &row.Public,
	}
}

// build projects the flat row into the concrete subtype selected by the
// kind discriminator. Unknown kinds degrade to a book so a bad row stays
// visible in the catalogue instead of vanishing.
func (row *documentRow) build() Bibliographic {
	base := NewDocument(row.ID, row.Public, row.Title)
	base.Date = fuzzydate.Parse(row.Date)
	base.Acknowledgements = row.Acknowledgements

	pages := PageRange{Start: row.PageStart, End: row.PageEnd, Raw: row.RawPages}

	switch DocumentKind(row.Kind) {
	case KindArticle:
		return &Article{
			Document: base,
			Year:     row.Year, Forthcoming: row.Forthcoming,
			Journal: row.Journal, Volume: row.Volume, Number: row.Number,
			Pages: pages,
		}
	case KindBookChapter:
		return &BookChapter{
			Document: base,
			Year:     row.Year, Forthcoming: row.Forthcoming,
			BookTitle: row.BookTitle, City: row.City,
			Pages: pages,
		}
	case KindPhdThesis:
		return &PhdThesis{
			Document: base,
			Year:     row.Year, Forthcoming: row.Forthcoming,
			Institution: row.Institution, City: row.City,
		}
	case KindOnlineSource:
		return &OnlineSource{
			Document: base,
			URL:      row.URL, LastAccessed: row.LastAccessed,
		}
	default:
		return &Book{
			Document: base,
			Year:     row.Year, Forthcoming: row.Forthcoming,
			City: row.City, Publisher: row.Publisher, Volume: row.Volume,
		}
	}
}

// rowFromDocument flattens a subtype back into the single-table shape.
func rowFromDocument(b Bibliographic) *documentRow {
	row := &documentRow{Kind: string(b.Kind())}

	if base := documentBase(b); base != nil {
		row.ID = base.ID
		row.Public = base.Public
		row.Title = base.Title
		row.Date = base.Date.Canonical()
		row.Acknowledgements = base.Acknowledgements
	}

	switch concrete := b.(type) {
	case *Book:
		row.Year, row.Forthcoming = concrete.Year, concrete.Forthcoming
		row.City, row.Publisher, row.Volume = concrete.City, concrete.Publisher, concrete.Volume
	case *Article:
		row.Year, row.Forthcoming = concrete.Year, concrete.Forthcoming
		row.Journal, row.Volume, row.Number = concrete.Journal, concrete.Volume, concrete.Number
		row.PageStart, row.PageEnd, row.RawPages = concrete.Pages.Start, concrete.Pages.End, concrete.Pages.Raw
	case *BookChapter:
		row.Year, row.Forthcoming = concrete.Year, concrete.Forthcoming
		row.BookTitle, row.City = concrete.BookTitle, concrete.City
		row.PageStart, row.PageEnd, row.RawPages = concrete.Pages.Start, concrete.Pages.End, concrete.Pages.Raw
	case *PhdThesis:
		row.Year, row.Forthcoming = concrete.Year, concrete.Forthcoming
		row.Institution, row.City = concrete.Institution, concrete.City
	case *OnlineSource:
		row.URL, row.LastAccessed = concrete.URL, concrete.LastAccessed
	}

	return row
}

// # Document Repository Implementation

func (repository *documentRepository) ListDocuments(context context.Context, f DocumentFilter, limit, offset int) ([]Bibliographic, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s d
		WHERE d.%s IS NULL
	`,
		documentSelectColumns("d"),
		schema.RefDocument.Table, schema.RefDocument.DeletedAt,
	)

	args := []any{}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		query += fmt.Sprintf(" AND d.%s ILIKE $%d", schema.RefDocument.Title, len(args))
	}
	if f.Kind != "" {
		args = append(args, string(f.Kind))
		query += fmt.Sprintf(" AND d.%s = $%d", schema.RefDocument.Kind, len(args))
	}
	if f.PublicOnly {
		query += fmt.Sprintf(" AND d.%s = TRUE", schema.RefDocument.Public)
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY d.%s ASC LIMIT $%d OFFSET $%d",
		schema.RefDocument.Title, len(args)-1, len(args))

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_documents")
	}
	defer rows.Close()

	var documents []Bibliographic
	var total int
	for rows.Next() {
		row := &documentRow{}
		targets := append(row.scanTargets(), &total)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_document")
		}
		documents = append(documents, row.build())
	}

	return documents, total, nil
}

func (repository *documentRepository) GetDocument(context context.Context, id int) (Bibliographic, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s d
		WHERE d.%s = $1 AND d.%s IS NULL
	`,
		documentSelectColumns("d"),
		schema.RefDocument.Table, schema.RefDocument.ID, schema.RefDocument.DeletedAt,
	)

	row := &documentRow{}
	if err := repository.pool.QueryRow(context, query, id).Scan(row.scanTargets()...); err != nil {
		return nil, dberr.Wrap(err, "get_document")
	}
	return row.build(), nil
}

func (repository *documentRepository) CreateDocument(context context.Context, b Bibliographic) error {
	row := rowFromDocument(b)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefDocument.Table,
		schema.RefDocument.Kind, schema.RefDocument.Title,
		schema.RefDocument.Year, schema.RefDocument.Forthcoming,
		schema.RefDocument.City, schema.RefDocument.Publisher, schema.RefDocument.Volume,
		schema.RefDocument.Journal, schema.RefDocument.Number,
		schema.RefDocument.PageStart, schema.RefDocument.PageEnd, schema.RefDocument.RawPages,
		schema.RefDocument.BookTitle, schema.RefDocument.Institution,
		schema.RefDocument.URL, schema.RefDocument.LastAccessed,
		schema.RefDocument.Date, schema.RefDocument.Acknowledgements, schema.RefDocument.Public,
		schema.RefDocument.CreatedAt, schema.RefDocument.UpdatedAt,
		schema.RefDocument.ID,
	)

	var id int
	err := repository.pool.QueryRow(context, query,
		row.Kind, row.Title, row.Year, row.Forthcoming,
		row.City, row.Publisher, row.Volume, row.Journal, row.Number,
		row.PageStart, row.PageEnd, row.RawPages,
		row.BookTitle, row.Institution, row.URL, row.LastAccessed,
		row.Date, row.Acknowledgements, row.Public,
	).Scan(&id)
	if err != nil {
		return dberr.Wrap(err, "create_document")
	}

	if base := documentBase(b); base != nil {
		base.ID = id
	}
	return nil
}

func (repository *documentRepository) UpdateDocument(context context.Context, b Bibliographic) error {
	row := rowFromDocument(b)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = $19, %s = $20, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefDocument.Table,
		schema.RefDocument.Kind, schema.RefDocument.Title,
		schema.RefDocument.Year, schema.RefDocument.Forthcoming,
		schema.RefDocument.City, schema.RefDocument.Publisher, schema.RefDocument.Volume,
		schema.RefDocument.Journal, schema.RefDocument.Number,
		schema.RefDocument.PageStart, schema.RefDocument.PageEnd, schema.RefDocument.RawPages,
		schema.RefDocument.BookTitle, schema.RefDocument.Institution,
		schema.RefDocument.URL, schema.RefDocument.LastAccessed,
		schema.RefDocument.Date, schema.RefDocument.Acknowledgements, schema.RefDocument.Public,
		schema.RefDocument.UpdatedAt,
		schema.RefDocument.ID, schema.RefDocument.DeletedAt,
		schema.RefDocument.ID,
	)

	var id int
	err := repository.pool.QueryRow(context, query,
		row.ID, row.Kind, row.Title, row.Year, row.Forthcoming,
		row.City, row.Publisher, row.Volume, row.Journal, row.Number,
		row.PageStart, row.PageEnd, row.RawPages,
		row.BookTitle, row.Institution, row.URL, row.LastAccessed,
		row.Date, row.Acknowledgements, row.Public,
	).Scan(&id)
	return dberr.Wrap(err, "update_document")
}

func (repository *documentRepository) DeleteDocument(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefDocument.Table, schema.RefDocument.DeletedAt, schema.RefDocument.ID, schema.RefDocument.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_document")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *documentRepository) ListPersonEdges(context context.Context, documentID int) ([]PersonEdge, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s dpr
		JOIN %s p ON p.%s = dpr.%s
		JOIN %s r ON r.%s = dpr.%s
		WHERE dpr.%s = $1 AND p.%s IS NULL AND r.%s IS NULL
	`,
		schema.RefRole.SystemName,
		schema.RefPerson.ID, schema.RefPerson.FirstName, schema.RefPerson.LastName,
		schema.RefPerson.Historical, schema.RefPerson.Modern, schema.RefPerson.Editorial,
		schema.RefPerson.Public,
		schema.RefDocumentPersonRole.Table,
		schema.RefPerson.Table, schema.RefPerson.ID, schema.RefDocumentPersonRole.PersonID,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefDocumentPersonRole.RoleID,
		schema.RefDocumentPersonRole.DocumentID, schema.RefPerson.DeletedAt, schema.RefRole.DeletedAt,
	)

	return scanPersonEdges(context, repository.pool, query, documentID, "list_document_person_edges")
}

func (repository *documentRepository) ReplacePersonRoles(context context.Context, documentID int, bindings []RoleBinding) error {
	return inTransaction(context, repository.pool, "replace_document_person_roles", func(tx pgx.Tx) error {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.RefDocumentPersonRole.Table, schema.RefDocumentPersonRole.DocumentID)
		if _, err := tx.Exec(context, deleteQuery, documentID); err != nil {
			return dberr.Wrap(err, "clear_document_person_roles")
		}

		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			SELECT $1, $2, r.%s, r.%s
			FROM %s r
			WHERE r.%s = $3 AND r.%s IS NULL
		`,
			schema.RefDocumentPersonRole.Table,
			schema.RefDocumentPersonRole.DocumentID, schema.RefDocumentPersonRole.PersonID,
			schema.RefDocumentPersonRole.RoleID, schema.RefDocumentPersonRole.Contributor,
			schema.RefRole.ID, schema.RefRole.ContributorRole,
			schema.RefRole.Table,
			schema.RefRole.SystemName, schema.RefRole.DeletedAt,
		)
		for _, binding := range bindings {
			cmd, err := tx.Exec(context, insertQuery, documentID, binding.PersonID, binding.RoleSystemName)
			if err != nil {
				return dberr.Wrap(err, "insert_document_person_role")
			}
			if cmd.RowsAffected() == 0 {
				return dberr.ErrNotFound
			}
		}
		return nil
	})
}
