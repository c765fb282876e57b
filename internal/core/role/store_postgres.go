// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package role

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wdebaets/codex/internal/platform/database/schema"
	"github.com/wdebaets/codex/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListRoles(context context.Context) ([]Role, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC NULLS LAST, %s ASC
	`,
		schema.RefRole.ID, schema.RefRole.SystemName, schema.RefRole.Name, schema.RefRole.Usage,
		schema.RefRole.ContributorRole, schema.RefRole.Rank, schema.RefRole.DisplayOrder,
		schema.RefRole.Table, schema.RefRole.DeletedAt,
		schema.RefRole.DisplayOrder, schema.RefRole.SystemName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_roles")
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var r Role
		var usage []string
		if err := rows.Scan(&r.ID, &r.SystemName, &r.Name, &usage, &r.ContributorRole, &r.Rank, &r.Order); err != nil {
			return nil, dberr.Wrap(err, "scan_role")
		}
		for _, u := range usage {
			r.Usage = append(r.Usage, Usage(u))
		}
		roles = append(roles, r)
	}

	return roles, nil
}

func (repository *PostgresRepository) GetRole(context context.Context, id int) (Role, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.RefRole.ID, schema.RefRole.SystemName, schema.RefRole.Name, schema.RefRole.Usage,
		schema.RefRole.ContributorRole, schema.RefRole.Rank, schema.RefRole.DisplayOrder,
		schema.RefRole.Table, schema.RefRole.ID, schema.RefRole.DeletedAt,
	)

	var r Role
	var usage []string
	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.SystemName, &r.Name, &usage, &r.ContributorRole, &r.Rank, &r.Order,
	)
	if err != nil {
		return Role{}, dberr.Wrap(err, "get_role")
	}

	for _, u := range usage {
		r.Usage = append(r.Usage, Usage(u))
	}
	return r, nil
}

func (repository *PostgresRepository) CreateRole(context context.Context, r *Role) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`,
		schema.RefRole.Table, schema.RefRole.SystemName, schema.RefRole.Name, schema.RefRole.Usage,
		schema.RefRole.ContributorRole, schema.RefRole.Rank, schema.RefRole.DisplayOrder,
		schema.RefRole.CreatedAt, schema.RefRole.UpdatedAt,
		schema.RefRole.ID,
	)

	err := repository.db.QueryRow(context, query,
		r.SystemName, r.Name, usageStrings(r.Usage), r.ContributorRole, r.Rank, r.Order,
	).Scan(&r.ID)
	return dberr.Wrap(err, "create_role")
}

func (repository *PostgresRepository) UpdateRole(context context.Context, r *Role) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.RefRole.Table, schema.RefRole.Name, schema.RefRole.Usage,
		schema.RefRole.ContributorRole, schema.RefRole.Rank, schema.RefRole.DisplayOrder,
		schema.RefRole.UpdatedAt,
		schema.RefRole.ID, schema.RefRole.DeletedAt,
		schema.RefRole.ID,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.Name, usageStrings(r.Usage), r.ContributorRole, r.Rank, r.Order,
	).Scan(&r.ID)
	return dberr.Wrap(err, "update_role")
}

func (repository *PostgresRepository) DeleteRole(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.RefRole.Table, schema.RefRole.DeletedAt, schema.RefRole.ID, schema.RefRole.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_role")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func usageStrings(usage []Usage) []string {
	out := make([]string, len(usage))
	for i, u := range usage {
		out[i] = string(u)
	}
	return out
}
