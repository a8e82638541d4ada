package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

// deleteByID removes one row by uuid primary key and reports whether it existed.
func deleteByID(ctx context.Context, db *sqlx.DB, table, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", table, err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s id=%s: %w", table, id, err)
	}
	return affectedOne(res, "delete "+table)
}

// setFlag updates a single boolean column by id and reports whether the row existed.
func setFlag(ctx context.Context, db *sqlx.DB, table, column, id string, value bool) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	query, args, err := qb.Update(table).Set(column, value).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update %s.%s query: %w", table, column, err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s.%s id=%s: %w", table, column, id, err)
	}
	return affectedOne(res, "update "+table)
}
