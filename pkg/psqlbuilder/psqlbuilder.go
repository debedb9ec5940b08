// Package psqlbuilder wraps squirrel with PostgreSQL ($N) placeholders so
// repositories do not repeat PlaceholderFormat on every builder.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT builder with $ placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT builder with $ placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE builder with $ placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE builder with $ placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
