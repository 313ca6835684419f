package fluentsql

import (
	"reflect"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

type ColumnList []string

func (c ColumnList) String() string {
	if len(c) == 0 {
		return ""
	}
	return "(" + strings.Join(c, ",") + ")"
}

// Column appends name as is. Duplicates are kept.
func (b *QueryBuilder) Column(name string) *QueryBuilder {
	b.columns = append(b.columns, name)
	return b
}

func (b *QueryBuilder) Columns(names ...string) *QueryBuilder {
	b.columns = append(b.columns, names...)
	return b
}

// ColumnsOf appends the columns of a struct, see ColumnsOf.
func (b *QueryBuilder) ColumnsOf(obj any) *QueryBuilder {
	return b.Columns(ColumnsOf(obj)...)
}

func structType(obj any) reflect.Type {
	t := reflect.TypeOf(obj)
	for t != nil && (t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice) {
		t = t.Elem()
	}
	return t
}

// ColumnsOf lists the column names of a struct's exported fields in
// declaration order. Field names are converted to snake_case unless a
// `sql:"name"` tag is present; `sql:"-"` skips the field.
func ColumnsOf(obj any) []string {
	t := structType(obj)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if !ft.IsExported() {
			continue
		}
		tag := strings.Split(ft.Tag.Get("sql"), ",")[0]
		switch tag {
		case "-":
			continue
		case "":
			cols = append(cols, strcase.ToSnake(ft.Name))
		default:
			cols = append(cols, tag)
		}
	}
	return cols
}

// TableName derives a table name from a struct type: User becomes users.
func TableName(obj any) string {
	t := structType(obj)
	if t == nil {
		return ""
	}
	return pluralize.NewClient().Plural(strcase.ToSnake(t.Name()))
}

// TableOf starts a builder for the table named after obj's type.
func TableOf(obj any, opts ...Option) *QueryBuilder {
	return Table(TableName(obj), opts...)
}
