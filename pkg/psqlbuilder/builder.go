package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder общий statement builder для PostgreSQL ($1, $2, ... плейсхолдеры)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert создает INSERT builder для указанной таблицы
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select создает SELECT builder для указанных колонок
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Update создает UPDATE builder для указанной таблицы
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder для указанной таблицы
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
