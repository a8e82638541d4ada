package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
// Fields tagged `db:"col,readonly"` are skipped (database defaults such as identity columns).
func InsertModel(table string, model any) *InsertBuilder {
	cols, vals, err := columnsAndValues(model)
	b := InsertInto(table)
	if err != nil {
		// Leave the builder empty so ToSQL reports the problem.
		return b
	}
	return b.Columns(cols...).Values(vals...)
}

// Columns lists the db column names of model in field order.
func Columns(model any) []string {
	cols, _, _ := columnsAndValues(model)
	return cols
}

func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		parts := strings.Split(strings.TrimSpace(field.Tag.Get("db")), ",")
		col := strings.TrimSpace(parts[0])
		if col == "" || col == "-" {
			continue
		}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) == "readonly" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
