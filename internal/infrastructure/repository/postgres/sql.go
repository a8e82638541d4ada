package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// validID guards uuid columns: anything that is not a UUID cannot match a row and would
// otherwise fail the cast inside postgres.
func validID(id string) bool {
	return idgen.Valid(id)
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	out := v.String
	return &out
}

func affectedOne(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n > 0, nil
}
