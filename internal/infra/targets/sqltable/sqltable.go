// Package sqltable maps relations onto SQL tables.
package sqltable

import (
	"fmt"
	"strings"

	"github.com/mmrzaf/dataz/internal/dataset"
)

// Name returns the table name of a relation: dashes become underscores.
func Name(relation string) string {
	return strings.ReplaceAll(relation, "-", "_")
}

// Quote quotes an identifier. Relation names such as "order" are reserved
// words, so every identifier is quoted.
func Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// ColumnDefs renders the column list of a CREATE TABLE statement, using
// typeOf for the SQL type of each field.
func ColumnDefs(schema dataset.Schema, typeOf func(dataset.FieldType) string) string {
	defs := make([]string, len(schema))
	for i, f := range schema {
		nullable := ""
		if !f.Nullable {
			nullable = " NOT NULL"
		}
		defs[i] = fmt.Sprintf("%s %s%s", Quote(f.Name), typeOf(f.Type), nullable)
	}
	return strings.Join(defs, ", ")
}

// Columns returns the quoted field names joined by commas.
func Columns(schema dataset.Schema) string {
	cols := make([]string, len(schema))
	for i, f := range schema {
		cols[i] = Quote(f.Name)
	}
	return strings.Join(cols, ", ")
}
