package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT for every db-tagged exported field of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
		vals = append(vals, f.value)
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// Columns lists the db column names of model in field order, for use as a select list.
func Columns(model any) ([]string, error) {
	fields, err := modelFields(model)
	if err != nil {
		return nil, err
	}
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
	}
	return cols, nil
}

type modelField struct {
	column string
	value  any
}

func modelFields(model any) ([]modelField, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	out := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		out = append(out, modelField{column: col, value: value.Field(i).Interface()})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return out, nil
}
