package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and positional ($n) arguments.
type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) raw(s string) {
	w.buf.WriteString(s)
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes s, replacing each '?' with the next bound argument.
func (w *writer) expr(s string, exprArgs []any) {
	next := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(s[i])
	}
}

func (w *writer) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.raw(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.raw(" AND ")
		}
		c.appendSQL(w)
	}
}

func (w *writer) returning(columns []string) {
	if len(columns) == 0 {
		return
	}
	w.raw(" RETURNING ")
	w.raw(strings.Join(columns, ", "))
}

func (w *writer) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}

type Condition interface {
	appendSQL(w *writer)
}

type conditionFunc func(w *writer)

func (f conditionFunc) appendSQL(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(column + " = ")
		w.bind(value)
	})
}

func In(column string, values []any) Condition {
	return conditionFunc(func(w *writer) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column + " IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *writer) { w.raw(column + " IS NULL") })
}

// IsTrue matches boolean columns without binding an argument.
func IsTrue(column string) Condition {
	return conditionFunc(func(w *writer) { w.raw(column + " IS TRUE") })
}

func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(w *writer) { w.expr(expr, args) })
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &writer{}
	w.raw("SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.raw(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.raw(" LIMIT " + strconv.Itoa(b.limit))
	}
	return w.result()
}

type InsertBuilder struct {
	table          string
	columns        []string
	rows           [][]any
	conflictTarget string
	conflictExtra  []string
	preserve       map[string]bool
	returning      []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflictUpdate turns the insert into an upsert keyed on target, overwriting every
// inserted column except the key itself (and any Preserve column) with the EXCLUDED value.
func (b *InsertBuilder) OnConflictUpdate(target string, extra ...string) *InsertBuilder {
	b.conflictTarget = target
	b.conflictExtra = append([]string(nil), extra...)
	return b
}

// Preserve keeps columns at their stored value when the upsert hits an existing row.
func (b *InsertBuilder) Preserve(columns ...string) *InsertBuilder {
	if b.preserve == nil {
		b.preserve = make(map[string]bool, len(columns))
	}
	for _, col := range columns {
		b.preserve[col] = true
	}
	return b
}

func (b *InsertBuilder) conflictClause() string {
	if b.conflictTarget == "" {
		return ""
	}
	sets := make([]string, 0, len(b.columns)+len(b.conflictExtra))
	for _, col := range b.columns {
		if col == b.conflictTarget || b.preserve[col] {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	sets = append(sets, b.conflictExtra...)
	return "ON CONFLICT (" + b.conflictTarget + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := &writer{}
	w.raw("INSERT INTO " + b.table + " (" + strings.Join(b.columns, ", ") + ") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.raw(", ")
		}
		w.raw("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.raw(", ")
			}
			w.bind(value)
		}
		w.raw(")")
	}
	if conflict := b.conflictClause(); conflict != "" {
		w.raw(" " + conflict)
	}
	w.returning(b.returning)
	return w.result()
}

type setClause struct {
	column string
	value  any
	expr   string
	args   []any
}

type UpdateBuilder struct {
	table     string
	sets      []setClause
	where     []Condition
	returning []string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("update without where clause is not allowed")
	}

	w := &writer{}
	w.raw("UPDATE " + b.table + " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(s.column + " = ")
		if s.expr != "" {
			w.expr(s.expr, s.args)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	w.returning(b.returning)
	return w.result()
}

type DeleteBuilder struct {
	table     string
	where     []Condition
	returning []string
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) Returning(columns ...string) *DeleteBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete without where clause is not allowed")
	}

	w := &writer{}
	w.raw("DELETE FROM " + b.table)
	w.where(b.where)
	w.returning(b.returning)
	return w.result()
}
